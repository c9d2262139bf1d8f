package handlers

import (
	"context"

	"github.com/edgard/cthulhubot/internal/command"
	"github.com/edgard/cthulhubot/internal/roll"
)

// NewSheetHandler returns the handler for /create_sheet.
func NewSheetHandler(deps HandlerDeps) CommandFunc {
	return sheetHandler{deps}.Handle
}

type sheetHandler struct {
	deps HandlerDeps
}

func (h sheetHandler) Handle(_ context.Context, cmd command.Command) (Reply, error) {
	attrs, err := roll.Sheet(h.deps.Roller)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: roll.SheetReply(attrs, cmd.Comment)}, nil
}
