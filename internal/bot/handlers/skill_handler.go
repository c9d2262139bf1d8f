package handlers

import (
	"context"
	"errors"
	"html"

	"github.com/edgard/cthulhubot/internal/command"
	"github.com/edgard/cthulhubot/internal/roll"
)

// NewSkillHandler returns the handler for /skill and /sk5 (Fifth) or /sk7 (Seventh).
func NewSkillHandler(deps HandlerDeps, ed roll.Edition) CommandFunc {
	return skillHandler{deps: deps, edition: ed}.Handle
}

type skillHandler struct {
	deps    HandlerDeps
	edition roll.Edition
}

func (h skillHandler) Handle(ctx context.Context, cmd command.Command) (Reply, error) {
	result, err := roll.Skill(h.deps.Roller, h.edition, cmd.Args)
	if errors.Is(err, roll.ErrMissingSkillValue) {
		return Reply{Text: html.EscapeString(h.deps.Config.Messages.MissingSkillValue)}, nil
	}
	if err != nil {
		return Reply{}, err
	}

	h.deps.Logger.DebugContext(ctx, "Skill roll classified",
		"handler", "skill", "edition", int(h.edition), "total", result.Total, "value", result.Value, "category", result.Category.String())
	h.deps.Metrics.RollClassified(result.Category.String())

	return Reply{Text: result.Reply(cmd.Comment), Category: result.Category.String()}, nil
}
