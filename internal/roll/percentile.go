package roll

import (
	"fmt"
	"math"
	"strconv"

	"github.com/edgard/cthulhubot/internal/dice"
)

// PercentileExpression is the expression rolled for a check.
const PercentileExpression = "d100"

// Category is the classification of a percentile roll.
type Category int

const (
	CriticalDouble Category = iota
	FumbleDouble
	Critical
	Fumble
	Unjudged
	Success
	Failure
	ExtremeSuccess
	HardSuccess
)

// String returns the metric/log name of the category.
func (c Category) String() string {
	switch c {
	case CriticalDouble:
		return "critical_double"
	case FumbleDouble:
		return "fumble_double"
	case Critical:
		return "critical"
	case Fumble:
		return "fumble"
	case Unjudged:
		return "unjudged"
	case Success:
		return "success"
	case Failure:
		return "failure"
	case ExtremeSuccess:
		return "extreme_success"
	case HardSuccess:
		return "hard_success"
	default:
		return "unknown"
	}
}

// Result is a classified percentile roll. Threshold is nil when the check
// had no target number.
type Result struct {
	Category  Category
	Total     int
	Threshold *int
}

// Classify applies the percentile ruleset. The first matching rule wins:
//
//  1. 1 with no target or 1 <= target: double critical
//  2. 100 with no target or 100 > target: double fumble
//  3. <= 5 with no target or total <= target: critical
//  4. > 95 with no target or total > target: fumble
//  5. no target: unjudged
//  6. total <= target: success
//  7. otherwise: failure
func Classify(total int, threshold *int) Result {
	noTarget := threshold == nil
	within := !noTarget && total <= *threshold

	var c Category
	switch {
	case total == 1 && (noTarget || within):
		c = CriticalDouble
	case total == 100 && (noTarget || !within):
		c = FumbleDouble
	case total <= 5 && (noTarget || within):
		c = Critical
	case total > 95 && (noTarget || !within):
		c = Fumble
	case noTarget:
		c = Unjudged
	case within:
		c = Success
	default:
		c = Failure
	}

	return Result{Category: c, Total: total, Threshold: threshold}
}

// Text renders the result label, e.g. "⭕ <b>Success</b> (42 &lt;= 50)".
func (r Result) Text() string {
	switch r.Category {
	case CriticalDouble:
		return fmt.Sprintf("⭐👑⭐ %s (%d)", bold("Critical!!!"), r.Total)
	case FumbleDouble:
		return fmt.Sprintf("🔥💀🔥 %s (%d)", bold("Fumble!!!"), r.Total)
	case Critical:
		return fmt.Sprintf("👑 %s (%d)", bold("Critical!"), r.Total)
	case Fumble:
		return fmt.Sprintf("💀 %s (%d)", bold("Fumble!"), r.Total)
	case Unjudged:
		return fmt.Sprintf("❓ %s (%d)", bold("Can't judge"), r.Total)
	case Success:
		return fmt.Sprintf("⭕ %s (%d &lt;= %d)", bold("Success"), r.Total, *r.Threshold)
	default:
		return fmt.Sprintf("❌ %s (%d &gt; %d)", bold("Failed"), r.Total, *r.Threshold)
	}
}

// Reply renders the full reply for the result.
func (r Result) Reply(comment string) string {
	return withComment(comment, "Result: "+r.Text())
}

// ParseThreshold returns the first run of ASCII digits in args as the target
// number. It returns nil when there is none; a number too large for an int
// is clamped to math.MaxInt.
func ParseThreshold(args string) *int {
	start := -1
	for i := 0; i <= len(args); i++ {
		isDigit := i < len(args) && args[i] >= '0' && args[i] <= '9'
		switch {
		case isDigit && start < 0:
			start = i
		case !isDigit && start >= 0:
			n, err := strconv.Atoi(args[start:i])
			if err != nil {
				n = math.MaxInt
			}
			return &n
		}
	}
	return nil
}

// Percentile rolls d100 with r and classifies it against the target number
// found in args.
func Percentile(r dice.Roller, args string) (Result, error) {
	out, err := r.Roll(PercentileExpression)
	if err != nil {
		return Result{}, fmt.Errorf("failed to roll %s: %w", PercentileExpression, err)
	}
	return Classify(out.Total, ParseThreshold(args)), nil
}
