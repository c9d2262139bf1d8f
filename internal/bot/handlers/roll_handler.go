package handlers

import (
	"context"

	"github.com/edgard/cthulhubot/internal/command"
	"github.com/edgard/cthulhubot/internal/roll"
)

// NewRollHandler returns the handler for /roll: a d100 judged against the
// target number in the arguments.
func NewRollHandler(deps HandlerDeps) CommandFunc {
	return rollHandler{deps}.Handle
}

type rollHandler struct {
	deps HandlerDeps
}

func (h rollHandler) Handle(ctx context.Context, cmd command.Command) (Reply, error) {
	result, err := roll.Percentile(h.deps.Roller, cmd.Args)
	if err != nil {
		return Reply{}, err
	}

	h.deps.Logger.DebugContext(ctx, "Percentile roll classified",
		"handler", "roll", "total", result.Total, "category", result.Category.String())
	h.deps.Metrics.RollClassified(result.Category.String())

	return Reply{Text: result.Reply(cmd.Comment), Category: result.Category.String()}, nil
}
