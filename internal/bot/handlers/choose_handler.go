package handlers

import (
	"context"
	"errors"
	"html"

	"github.com/edgard/cthulhubot/internal/command"
	"github.com/edgard/cthulhubot/internal/roll"
)

// NewChooseHandler returns the handler for /choose.
func NewChooseHandler(deps HandlerDeps) CommandFunc {
	return chooseHandler{deps}.Handle
}

type chooseHandler struct {
	deps HandlerDeps
}

func (h chooseHandler) Handle(_ context.Context, cmd command.Command) (Reply, error) {
	choice, err := roll.Choose(h.deps.Source, cmd.Args)
	if errors.Is(err, roll.ErrNoChoices) {
		return Reply{Text: html.EscapeString(h.deps.Config.Messages.NoChoices)}, nil
	}
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: choice.Reply(cmd.Comment)}, nil
}
