package handlers

import (
	"context"
	"errors"
	"html"

	"github.com/edgard/cthulhubot/internal/command"
	"github.com/edgard/cthulhubot/internal/roll"
)

// NewOpposedHandler returns the handler for /op6.
func NewOpposedHandler(deps HandlerDeps) CommandFunc {
	return opposedHandler{deps}.Handle
}

type opposedHandler struct {
	deps HandlerDeps
}

func (h opposedHandler) Handle(_ context.Context, cmd command.Command) (Reply, error) {
	result, err := roll.Opposed(h.deps.Roller, cmd.Args)
	if errors.Is(err, roll.ErrInvalidStatuses) {
		return Reply{Text: html.EscapeString(h.deps.Config.Messages.InvalidStatuses)}, nil
	}
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: result.Reply(cmd.Comment)}, nil
}
