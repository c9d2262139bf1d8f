package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Evaluation limits. They keep a single chat message from asking for an
// unbounded amount of work or an unreadable reply.
const (
	MaxTerms    = 20
	MaxDice     = 100
	MaxSides    = 1000
	MaxConstant = 1_000_000

	// MaxTotalDice bounds the dice of a whole expression, so the listed
	// components fit in one chat message.
	MaxTotalDice = 500
)

// Term is one signed summand of an expression: either Count dice with Sides
// faces, or a constant Value when Sides is zero.
type Term struct {
	Sign  int
	Count int
	Sides int
	Value int
}

// IsDice reports whether the term rolls dice.
func (t Term) IsDice() bool {
	return t.Sides > 0
}

// Expression is a parsed dice expression ready to be rolled.
type Expression struct {
	Raw   string
	Terms []Term
}

// DiceCount returns the number of dice rolled by the expression, which is
// also the number of components of every Outcome it produces.
func (e Expression) DiceCount() int {
	n := 0
	for _, t := range e.Terms {
		if t.IsDice() {
			n += t.Count
		}
	}
	return n
}

// Parse parses a dice expression.
// Supported forms: "d100", "d%", "3d6", "2d6+6", "1d8 + 1d4 - 1", "10".
// Whitespace is ignored and "d" is case-insensitive.
func Parse(expr string) (Expression, error) {
	raw := expr
	s := strings.ToLower(strings.Join(strings.Fields(expr), ""))
	if s == "" {
		return Expression{}, invalid(raw, "empty expression")
	}

	sign := 1
	i := 0
	switch s[0] {
	case '+':
		i = 1
	case '-':
		sign = -1
		i = 1
	}

	var terms []Term
	for {
		if len(terms) == MaxTerms {
			return Expression{}, invalid(raw, fmt.Sprintf("more than %d terms", MaxTerms))
		}

		j := i
		for j < len(s) && s[j] != '+' && s[j] != '-' {
			j++
		}

		term, err := parseTerm(s[i:j])
		if err != nil {
			return Expression{}, invalid(raw, err.Error())
		}
		term.Sign = sign
		terms = append(terms, term)

		if j == len(s) {
			break
		}
		if s[j] == '+' {
			sign = 1
		} else {
			sign = -1
		}
		i = j + 1
	}

	e := Expression{Raw: raw, Terms: terms}
	if n := e.DiceCount(); n > MaxTotalDice {
		return Expression{}, invalid(raw, fmt.Sprintf("%d dice exceed %d", n, MaxTotalDice))
	}
	return e, nil
}

func parseTerm(tok string) (Term, error) {
	if tok == "" {
		return Term{}, fmt.Errorf("missing term")
	}

	dIdx := strings.IndexByte(tok, 'd')
	if dIdx < 0 {
		v, err := parseNumber(tok)
		if err != nil {
			return Term{}, fmt.Errorf("invalid constant %q", tok)
		}
		if v > MaxConstant {
			return Term{}, fmt.Errorf("constant %d exceeds %d", v, MaxConstant)
		}
		return Term{Value: v}, nil
	}

	count := 1
	if countStr := tok[:dIdx]; countStr != "" {
		v, err := parseNumber(countStr)
		if err != nil {
			return Term{}, fmt.Errorf("invalid die count %q", countStr)
		}
		count = v
	}
	if count < 1 || count > MaxDice {
		return Term{}, fmt.Errorf("die count %d outside 1..%d", count, MaxDice)
	}

	sidesStr := tok[dIdx+1:]
	var sides int
	if sidesStr == "%" {
		sides = 100
	} else {
		v, err := parseNumber(sidesStr)
		if err != nil {
			return Term{}, fmt.Errorf("invalid die sides %q", sidesStr)
		}
		sides = v
	}
	if sides < 2 || sides > MaxSides {
		return Term{}, fmt.Errorf("die sides %d outside 2..%d", sides, MaxSides)
	}

	return Term{Count: count, Sides: sides}, nil
}

// parseNumber accepts only plain ASCII digits.
func parseNumber(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("not a number: %q", s)
		}
	}
	return strconv.Atoi(s)
}

func invalid(raw, reason string) error {
	return fmt.Errorf("%w: %s in %q", ErrInvalidExpression, reason, raw)
}
