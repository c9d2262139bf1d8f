package handlers

import (
	"context"
	"html"

	"github.com/edgard/cthulhubot/internal/command"
	"github.com/edgard/cthulhubot/internal/roll"
)

// NewCustomRollHandler returns the handler for /custom_roll.
func NewCustomRollHandler(deps HandlerDeps) CommandFunc {
	return customRollHandler{deps}.Handle
}

type customRollHandler struct {
	deps HandlerDeps
}

func (h customRollHandler) Handle(ctx context.Context, cmd command.Command) (Reply, error) {
	out, err := roll.Custom(h.deps.Roller, cmd.Args)
	if roll.IsUserError(err) {
		h.deps.Logger.InfoContext(ctx, "Rejected dice expression", "handler", "custom_roll", "expression", cmd.Args, "error", err)
		h.deps.Metrics.InvalidExpression()
		return Reply{Text: html.EscapeString(h.deps.Config.Messages.InvalidExpression)}, nil
	}
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: roll.CustomReply(out, cmd.Comment)}, nil
}
