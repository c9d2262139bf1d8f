package dice

import (
	"io"
	"log/slog"
)

// Roll evaluates a parsed expression using src.
//
// len(result.Components) == expr.DiceCount() and result.Total equals the
// signed sum of all dice and constants.
func Roll(expr Expression, src Source) Outcome {
	components := make([]int, 0, expr.DiceCount())
	total := 0

	for _, t := range expr.Terms {
		if !t.IsDice() {
			total += t.Sign * t.Value
			continue
		}
		for i := 0; i < t.Count; i++ {
			v := src.Intn(t.Sides) + 1
			components = append(components, v)
			total += t.Sign * v
		}
	}

	return Outcome{
		Expression: expr.Raw,
		Total:      total,
		Components: components,
	}
}

// Evaluator is the Roller used by the bot: it parses, rolls and logs.
type Evaluator struct {
	src    Source
	logger *slog.Logger
}

// NewEvaluator creates an Evaluator rolling with src. A nil logger discards
// roll logs.
func NewEvaluator(src Source, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Evaluator{
		src:    src,
		logger: logger.With("component", "dice"),
	}
}

// Roll parses expr and rolls it once.
func (e *Evaluator) Roll(expr string) (Outcome, error) {
	parsed, err := Parse(expr)
	if err != nil {
		e.logger.Debug("Rejected dice expression", "expression", expr, "error", err)
		return Outcome{}, err
	}

	out := Roll(parsed, e.src)
	e.logger.Debug("Dice roll",
		"expression", out.Expression,
		"components", out.Components,
		"total", out.Total,
	)
	return out, nil
}

var _ Roller = (*Evaluator)(nil)
