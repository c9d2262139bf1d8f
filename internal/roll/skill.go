package roll

import (
	"errors"
	"fmt"

	"github.com/edgard/cthulhubot/internal/dice"
)

// ErrMissingSkillValue is returned by Skill when args holds no number.
var ErrMissingSkillValue = errors.New("missing skill value")

// Edition selects the skill rules.
type Edition int

const (
	// Fifth judges critical and fumble against the skill value.
	Fifth Edition = 5
	// Seventh adds hard (value/2) and extreme (value/5) successes.
	Seventh Edition = 7
)

// SkillResult is a d100 roll judged against a skill value.
type SkillResult struct {
	Edition  Edition
	Category Category
	Total    int
	Value    int
}

// ClassifySkill judges total against value.
//
// Fifth edition is the percentile ruleset with a target. Seventh edition,
// first match wins:
//
//  1. 1 and 1 <= value: double critical
//  2. total <= value/5: extreme success
//  3. total <= value/2: hard success
//  4. 100, or > 95 when value < 50: fumble
//  5. total <= value: success
//  6. otherwise: failure
func ClassifySkill(ed Edition, total, value int) SkillResult {
	res := SkillResult{Edition: ed, Total: total, Value: value}
	if ed != Seventh {
		res.Edition = Fifth
		res.Category = Classify(total, &value).Category
		return res
	}

	switch {
	case total == 1 && total <= value:
		res.Category = CriticalDouble
	case total <= value/5:
		res.Category = ExtremeSuccess
	case total <= value/2:
		res.Category = HardSuccess
	case total == 100 || (total > 95 && value < 50):
		res.Category = Fumble
	case total <= value:
		res.Category = Success
	default:
		res.Category = Failure
	}
	return res
}

// Text renders the result label with the comparison that decided it.
func (r SkillResult) Text() string {
	switch r.Category {
	case CriticalDouble:
		return fmt.Sprintf("⭐👑⭐ %s (1 &lt;= %d)", bold("Critical!!!"), r.Value)
	case FumbleDouble:
		return fmt.Sprintf("🔥💀🔥 %s (100 &gt; %d)", bold("Fumble!!!"), r.Value)
	case Critical:
		return fmt.Sprintf("👑 %s (%d &lt;= %d)", bold("Critical!"), r.Total, r.Value)
	case ExtremeSuccess:
		return fmt.Sprintf("👑 %s (%d &lt;= %d / 5)", bold("Extreme Success!"), r.Total, r.Value)
	case HardSuccess:
		return fmt.Sprintf("⭕ %s (%d &lt;= %d / 2)", bold("Hard Success!"), r.Total, r.Value)
	case Fumble:
		if r.Edition == Seventh {
			return fmt.Sprintf("💀 %s (%d &gt;= %d)", bold("Fumble!"), r.Total, r.Value)
		}
		return fmt.Sprintf("💀 %s (%d &gt; %d)", bold("Fumble!"), r.Total, r.Value)
	case Success:
		return fmt.Sprintf("⭕ %s (%d &lt;= %d)", bold("Success"), r.Total, r.Value)
	default:
		return fmt.Sprintf("❌ %s (%d &gt; %d)", bold("Failed"), r.Total, r.Value)
	}
}

// Reply renders the full reply for the result.
func (r SkillResult) Reply(comment string) string {
	return withComment(comment, "Result: "+r.Text())
}

// Skill rolls d100 with r against the skill value found in args.
func Skill(r dice.Roller, ed Edition, args string) (SkillResult, error) {
	value := ParseThreshold(args)
	if value == nil {
		return SkillResult{}, ErrMissingSkillValue
	}
	out, err := r.Roll(PercentileExpression)
	if err != nil {
		return SkillResult{}, fmt.Errorf("failed to roll %s: %w", PercentileExpression, err)
	}
	return ClassifySkill(ed, out.Total, *value), nil
}
