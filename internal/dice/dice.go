// Package dice parses and evaluates dice expressions such as "3d6+3" or "d100".
package dice

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidExpression is returned when a dice expression cannot be parsed
// or exceeds the evaluation limits.
var ErrInvalidExpression = errors.New("invalid dice expression")

// Outcome is the result of evaluating a dice expression once.
//
// Components holds every individual die result in expression order, flattened
// across dice groups. Constant terms contribute to Total only.
type Outcome struct {
	Expression string
	Total      int
	Components []int
}

// ComponentsString joins the die results with ", ", e.g. "4, 2, 6".
func (o Outcome) ComponentsString() string {
	parts := make([]string, len(o.Components))
	for i, c := range o.Components {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ", ")
}

// Roller evaluates dice expressions. Implementations return an error wrapping
// ErrInvalidExpression when the expression is malformed.
type Roller interface {
	Roll(expr string) (Outcome, error)
}

// Source is the randomness provider for dice rolls.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// Intn returns a random int in [0, n). n is always > 0.
	Intn(n int) int
}
