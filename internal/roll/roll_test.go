package roll_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/edgard/cthulhubot/internal/dice"
	"github.com/edgard/cthulhubot/internal/roll"
)

// fakeRoller returns queued outcomes in order and records the expressions it
// was asked to roll.
type fakeRoller struct {
	outcomes []dice.Outcome
	err      error
	calls    []string
}

func (f *fakeRoller) Roll(expr string) (dice.Outcome, error) {
	f.calls = append(f.calls, expr)
	if f.err != nil {
		return dice.Outcome{}, f.err
	}
	out := f.outcomes[0]
	f.outcomes = f.outcomes[1:]
	out.Expression = expr
	return out, nil
}

type fixedSource int

func (f fixedSource) Intn(int) int { return int(f) }

func intPtr(n int) *int { return &n }

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		threshold *int
		want      roll.Category
		text      string
	}{
		{"double critical beats success", 1, intPtr(50), roll.CriticalDouble, "⭐👑⭐ <b>Critical!!!</b> (1)"},
		{"double critical without target", 1, nil, roll.CriticalDouble, "⭐👑⭐ <b>Critical!!!</b> (1)"},
		{"one above zero target fails", 1, intPtr(0), roll.Failure, "❌ <b>Failed</b> (1 &gt; 0)"},
		{"double fumble without target", 100, nil, roll.FumbleDouble, "🔥💀🔥 <b>Fumble!!!</b> (100)"},
		{"double fumble over target", 100, intPtr(99), roll.FumbleDouble, "🔥💀🔥 <b>Fumble!!!</b> (100)"},
		{"hundred within target succeeds", 100, intPtr(100), roll.Success, "⭕ <b>Success</b> (100 &lt;= 100)"},
		{"critical", 5, intPtr(50), roll.Critical, "👑 <b>Critical!</b> (5)"},
		{"critical without target", 3, nil, roll.Critical, "👑 <b>Critical!</b> (3)"},
		{"low roll over low target fails", 4, intPtr(3), roll.Failure, "❌ <b>Failed</b> (4 &gt; 3)"},
		{"fumble", 96, intPtr(50), roll.Fumble, "💀 <b>Fumble!</b> (96)"},
		{"fumble without target", 99, nil, roll.Fumble, "💀 <b>Fumble!</b> (99)"},
		{"high roll within high target succeeds", 97, intPtr(98), roll.Success, "⭕ <b>Success</b> (97 &lt;= 98)"},
		{"unjudged", 50, nil, roll.Unjudged, "❓ <b>Can't judge</b> (50)"},
		{"boundary success", 50, intPtr(50), roll.Success, "⭕ <b>Success</b> (50 &lt;= 50)"},
		{"failure", 51, intPtr(50), roll.Failure, "❌ <b>Failed</b> (51 &gt; 50)"},
		{"ninety five is not a fumble", 95, intPtr(50), roll.Failure, "❌ <b>Failed</b> (95 &gt; 50)"},
		{"six is not a critical", 6, intPtr(50), roll.Success, "⭕ <b>Success</b> (6 &lt;= 50)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := roll.Classify(tt.total, tt.threshold)
			assert.Equal(t, tt.want, got.Category)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.text, got.Text())
		})
	}
}

func TestClassify_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		total := rapid.IntRange(1, 100).Draw(rt, "total")
		hasTarget := rapid.Bool().Draw(rt, "has_target")

		var threshold *int
		if hasTarget {
			threshold = intPtr(rapid.IntRange(0, 200).Draw(rt, "threshold"))
		}

		got := roll.Classify(total, threshold)
		assert.Contains(rt, got.Text(), fmt.Sprint(total))

		switch got.Category {
		case roll.Success:
			require.NotNil(rt, threshold)
			assert.LessOrEqual(rt, total, *threshold)
			assert.Greater(rt, total, 5)
		case roll.Failure:
			require.NotNil(rt, threshold)
			assert.Greater(rt, total, *threshold)
			assert.LessOrEqual(rt, total, 95)
		case roll.Unjudged:
			assert.Nil(rt, threshold)
			assert.Greater(rt, total, 5)
			assert.LessOrEqual(rt, total, 95)
		case roll.CriticalDouble:
			assert.Equal(rt, 1, total)
		case roll.FumbleDouble:
			assert.Equal(rt, 100, total)
		case roll.Critical:
			assert.LessOrEqual(rt, total, 5)
		case roll.Fumble:
			assert.Greater(rt, total, 95)
		}
	})
}

func TestParseThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args string
		want *int
	}{
		{"", nil},
		{"no digits", nil},
		{"50", intPtr(50)},
		{"skill 65 bonus 10", intPtr(65)},
		{"lv.07", intPtr(7)},
		{"x0", intPtr(0)},
		{"99999999999999999999999", intPtr(math.MaxInt)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roll.ParseThreshold(tt.args), tt.args)
	}
}

func TestPercentile(t *testing.T) {
	r := &fakeRoller{outcomes: []dice.Outcome{{Total: 42, Components: []int{42}}}}

	got, err := roll.Percentile(r, "Spot Hidden 60")
	require.NoError(t, err)
	assert.Equal(t, []string{"d100"}, r.calls)
	assert.Equal(t, roll.Success, got.Category)
	assert.Equal(t, `"look around" Result: ⭕ <b>Success</b> (42 &lt;= 60)`, got.Reply("look around"))
	assert.Equal(t, "Result: ⭕ <b>Success</b> (42 &lt;= 60)", got.Reply(""))
}

func TestPercentile_RollerError(t *testing.T) {
	r := &fakeRoller{err: errors.New("boom")}

	_, err := roll.Percentile(r, "")
	assert.Error(t, err)
}

func TestCustom(t *testing.T) {
	t.Parallel()

	t.Run("missing expression never rolls", func(t *testing.T) {
		t.Parallel()
		for _, args := range []string{"", "   "} {
			r := &fakeRoller{}
			_, err := roll.Custom(r, args)
			assert.ErrorIs(t, err, roll.ErrMissingExpression)
			assert.True(t, roll.IsUserError(err))
			assert.Empty(t, r.calls)
		}
	})

	t.Run("invalid expression", func(t *testing.T) {
		t.Parallel()
		ev := dice.NewEvaluator(fixedSource(0), nil)
		_, err := roll.Custom(ev, "2d6*2")
		assert.ErrorIs(t, err, dice.ErrInvalidExpression)
		assert.True(t, roll.IsUserError(err))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		r := &fakeRoller{outcomes: []dice.Outcome{{Total: 12, Components: []int{4, 5}}}}
		out, err := roll.Custom(r, "2d6+3")
		require.NoError(t, err)
		assert.Equal(t, []string{"2d6+3"}, r.calls)
		assert.Equal(t, "Result: 🎲 <b>12</b> (2d6+3 : 4, 5)", roll.CustomReply(out, ""))
		assert.Equal(t, `"dmg &lt;3" Result: 🎲 <b>12</b> (2d6+3 : 4, 5)`, roll.CustomReply(out, "dmg <3"))
	})
}

func TestIsUserError(t *testing.T) {
	assert.False(t, roll.IsUserError(errors.New("network down")))
	assert.False(t, roll.IsUserError(nil))
}

func TestSheet(t *testing.T) {
	outcomes := make([]dice.Outcome, 8)
	for i := range outcomes {
		outcomes[i] = dice.Outcome{Total: 10 + i, Components: []int{i + 1, 2, 3}}
	}
	r := &fakeRoller{outcomes: outcomes}

	attrs, err := roll.Sheet(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"3d6", "3d6", "3d6", "3d6", "3d6", "2d6+6", "2d6+6", "3d6+3"}, r.calls)

	reply := roll.SheetReply(attrs, "")
	lines := strings.Split(reply, "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Result:", lines[0])

	names := []string{"STR", "CON", "POW", "DEX", "APP", "SIZ", "INT", "EDU"}
	for i, name := range names {
		assert.Contains(t, lines[i+1], " "+name+" ")
		assert.Contains(t, lines[i+1], fmt.Sprintf("<b>%d</b>", 10+i))
	}
	assert.Equal(t, "🗡️ STR <b>10</b> (3d6 : 1, 2, 3)", lines[1])
	assert.Equal(t, "🐘 SIZ <b>15</b> (2d6 + 6 : 6, 2, 3)", lines[6])
	assert.Equal(t, "📚 EDU <b>17</b> (3d6 + 3 : 8, 2, 3)", lines[8])

	withComment := roll.SheetReply(attrs, "Alice")
	assert.True(t, strings.HasPrefix(withComment, `"Alice" Result:`))
	assert.Len(t, strings.Split(withComment, "\n"), 9)
}

func TestSheet_IndependentRolls(t *testing.T) {
	ev := dice.NewEvaluator(dice.NewSeededSource(7), nil)

	attrs, err := roll.Sheet(ev)
	require.NoError(t, err)
	require.Len(t, attrs, 8)

	// STR..APP share "3d6" but each must consume fresh dice.
	seen := map[string]bool{}
	for _, a := range attrs[:5] {
		seen[a.Outcome.ComponentsString()] = true
		assert.Len(t, a.Outcome.Components, 3)
	}
	assert.Greater(t, len(seen), 1)
	assert.Len(t, attrs[5].Outcome.Components, 2)
	assert.GreaterOrEqual(t, attrs[7].Outcome.Total, 6)
}

func TestChoose(t *testing.T) {
	t.Parallel()

	c, err := roll.Choose(fixedSource(1), " tavern , ,library,<b>crypt</b>")
	require.NoError(t, err)
	assert.Equal(t, "library", c.Picked)
	assert.Equal(t, []string{"tavern", "library", "<b>crypt</b>"}, c.Options)
	assert.Equal(t, "Result: 👉 <b>library</b> (from tavern, library, &lt;b&gt;crypt&lt;/b&gt;)", c.Reply(""))

	_, err = roll.Choose(fixedSource(0), " , ")
	assert.ErrorIs(t, err, roll.ErrNoChoices)
}

func TestPercentile_HugeThresholdSucceeds(t *testing.T) {
	r := &fakeRoller{outcomes: []dice.Outcome{{Total: 42, Components: []int{42}}}}

	got, err := roll.Percentile(r, "99999999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, roll.Success, got.Category)
}

func TestClassifySkill_Fifth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total, value int
		want         roll.Category
		text         string
	}{
		{1, 50, roll.CriticalDouble, "⭐👑⭐ <b>Critical!!!</b> (1 &lt;= 50)"},
		{1, 0, roll.Failure, "❌ <b>Failed</b> (1 &gt; 0)"},
		{5, 50, roll.Critical, "👑 <b>Critical!</b> (5 &lt;= 50)"},
		{6, 50, roll.Success, "⭕ <b>Success</b> (6 &lt;= 50)"},
		{51, 50, roll.Failure, "❌ <b>Failed</b> (51 &gt; 50)"},
		{96, 50, roll.Fumble, "💀 <b>Fumble!</b> (96 &gt; 50)"},
		{96, 99, roll.Success, "⭕ <b>Success</b> (96 &lt;= 99)"},
		{100, 99, roll.FumbleDouble, "🔥💀🔥 <b>Fumble!!!</b> (100 &gt; 99)"},
	}

	for _, tt := range tests {
		got := roll.ClassifySkill(roll.Fifth, tt.total, tt.value)
		assert.Equal(t, tt.want, got.Category, "total=%d value=%d", tt.total, tt.value)
		assert.Equal(t, tt.text, got.Text(), "total=%d value=%d", tt.total, tt.value)
	}
}

func TestClassifySkill_Seventh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total, value int
		want         roll.Category
		text         string
	}{
		{1, 60, roll.CriticalDouble, "⭐👑⭐ <b>Critical!!!</b> (1 &lt;= 60)"},
		{12, 60, roll.ExtremeSuccess, "👑 <b>Extreme Success!</b> (12 &lt;= 60 / 5)"},
		{13, 60, roll.HardSuccess, "⭕ <b>Hard Success!</b> (13 &lt;= 60 / 2)"},
		{30, 60, roll.HardSuccess, "⭕ <b>Hard Success!</b> (30 &lt;= 60 / 2)"},
		{31, 60, roll.Success, "⭕ <b>Success</b> (31 &lt;= 60)"},
		{60, 60, roll.Success, "⭕ <b>Success</b> (60 &lt;= 60)"},
		{61, 60, roll.Failure, "❌ <b>Failed</b> (61 &gt; 60)"},
		{96, 60, roll.Failure, "❌ <b>Failed</b> (96 &gt; 60)"},
		{95, 49, roll.Failure, "❌ <b>Failed</b> (95 &gt; 49)"},
		{96, 49, roll.Fumble, "💀 <b>Fumble!</b> (96 &gt;= 49)"},
		{99, 10, roll.Fumble, "💀 <b>Fumble!</b> (99 &gt;= 10)"},
		{100, 100, roll.Fumble, "💀 <b>Fumble!</b> (100 &gt;= 100)"},
		{50, 100, roll.HardSuccess, "⭕ <b>Hard Success!</b> (50 &lt;= 100 / 2)"},
		{99, 100, roll.Success, "⭕ <b>Success</b> (99 &lt;= 100)"},
		{1, 0, roll.Failure, "❌ <b>Failed</b> (1 &gt; 0)"},
	}

	for _, tt := range tests {
		got := roll.ClassifySkill(roll.Seventh, tt.total, tt.value)
		assert.Equal(t, tt.want, got.Category, "total=%d value=%d", tt.total, tt.value)
		assert.Equal(t, tt.text, got.Text(), "total=%d value=%d", tt.total, tt.value)
	}
}

func TestSkill(t *testing.T) {
	r := &fakeRoller{outcomes: []dice.Outcome{{Total: 10, Components: []int{10}}}}

	got, err := roll.Skill(r, roll.Seventh, "Spot Hidden 55")
	require.NoError(t, err)
	assert.Equal(t, []string{"d100"}, r.calls)
	assert.Equal(t, `"look" Result: 👑 <b>Extreme Success!</b> (10 &lt;= 55 / 5)`, got.Reply("look"))

	idle := &fakeRoller{}
	_, err = roll.Skill(idle, roll.Fifth, "no value")
	assert.ErrorIs(t, err, roll.ErrMissingSkillValue)
	assert.Empty(t, idle.calls)
}

func TestOpposedChance(t *testing.T) {
	t.Parallel()

	tests := []struct{ active, passive, want int }{
		{10, 10, 50},
		{12, 10, 60},
		{10, 12, 40},
		{20, 10, 100},
		{20, 0, 100},
		{0, 10, 0},
		{0, 20, 0},
		{19, 10, 95},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roll.OpposedChance(tt.active, tt.passive), "%d vs %d", tt.active, tt.passive)
	}
}

func TestParseOpposed(t *testing.T) {
	t.Parallel()

	a, p, err := roll.ParseOpposed(" 12  10 ")
	require.NoError(t, err)
	assert.Equal(t, roll.Contestant{Name: "player1", Status: 12}, a)
	assert.Equal(t, roll.Contestant{Name: "player2", Status: 10}, p)

	a, p, err = roll.ParseOpposed("0 20 Alice Bob")
	require.NoError(t, err)
	assert.Equal(t, roll.Contestant{Name: "Alice", Status: 0}, a)
	assert.Equal(t, roll.Contestant{Name: "Bob", Status: 20}, p)

	for _, args := range []string{"", "12", "12 x", "21 10", "10 -1", "a b"} {
		_, _, err := roll.ParseOpposed(args)
		assert.ErrorIs(t, err, roll.ErrInvalidStatuses, args)
	}
}

func TestOpposed(t *testing.T) {
	r := &fakeRoller{outcomes: []dice.Outcome{{Total: 60, Components: []int{60}}, {Total: 61, Components: []int{61}}}}

	won, err := roll.Opposed(r, "12 10 Alice <Bob>")
	require.NoError(t, err)
	assert.True(t, won.ActiveWon())
	assert.Equal(t, "Result:\n🥇 <b>Alice</b> 12 (60 &lt;= 60)\n🥈 <b>&lt;Bob&gt;</b> 10 (60 &gt; 60)", won.Reply(""))

	lost, err := roll.Opposed(r, "12 10")
	require.NoError(t, err)
	assert.False(t, lost.ActiveWon())
	assert.Equal(t, "\"STR\" Result:\n🥇 <b>player2</b> 10 (61 &gt; 60)\n🥈 <b>player1</b> 12 (61 &lt;= 60)", lost.Reply("STR"))
}

func TestReplies_FitInOneMessage(t *testing.T) {
	longComment := strings.Repeat("c", 4000)
	terms := strings.Repeat("100d1000+", dice.MaxTotalDice/dice.MaxDice) +
		strings.TrimSuffix(strings.Repeat("1000000+", dice.MaxTerms-dice.MaxTotalDice/dice.MaxDice), "+")

	out, err := roll.Custom(dice.NewEvaluator(dice.NewSeededSource(1), nil), terms+strings.Repeat(" ", 3000))
	require.NoError(t, err)
	require.Len(t, out.Components, dice.MaxTotalDice)
	assert.LessOrEqual(t, utf8.RuneCountInString(roll.CustomReply(out, longComment)), roll.MaxMessageLength)

	choice, err := roll.Choose(fixedSource(0), strings.Repeat("option,", 600))
	require.NoError(t, err)
	assert.LessOrEqual(t, utf8.RuneCountInString(choice.Reply(longComment)), roll.MaxMessageLength)

	contest, err := roll.Opposed(&fakeRoller{outcomes: []dice.Outcome{{Total: 1}}}, "1 2 "+strings.Repeat("a", 2000)+" "+strings.Repeat("b", 2000))
	require.NoError(t, err)
	assert.LessOrEqual(t, utf8.RuneCountInString(contest.Reply(longComment)), roll.MaxMessageLength)
}
