package roll

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/edgard/cthulhubot/internal/dice"
)

// ErrMissingExpression is returned by Custom when no expression was given.
var ErrMissingExpression = errors.New("missing dice expression")

// Custom rolls a user supplied expression. An empty expression returns
// ErrMissingExpression without invoking r; a malformed one returns an error
// wrapping dice.ErrInvalidExpression.
func Custom(r dice.Roller, expr string) (dice.Outcome, error) {
	if strings.TrimSpace(expr) == "" {
		return dice.Outcome{}, ErrMissingExpression
	}
	out, err := r.Roll(expr)
	if err != nil {
		return dice.Outcome{}, err
	}
	return out, nil
}

// IsUserError reports whether err should be answered with the fixed
// invalid-expression message rather than treated as a failure.
func IsUserError(err error) bool {
	return errors.Is(err, ErrMissingExpression) || errors.Is(err, dice.ErrInvalidExpression)
}

// CustomReply renders "Result: 🎲 <b>total</b> (expr : c1, c2)".
func CustomReply(out dice.Outcome, comment string) string {
	return withComment(comment, "Result: "+outcomeText(out))
}

func outcomeText(out dice.Outcome) string {
	return fmt.Sprintf("🎲 %s (%s : %s)", bold(fmt.Sprint(out.Total)), html.EscapeString(elide(out.Expression, maxEchoLength)), out.ComponentsString())
}
