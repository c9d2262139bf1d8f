package roll

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/edgard/cthulhubot/internal/dice"
)

// Opposed roll limits.
const (
	MinStatus = 0
	MaxStatus = 20
)

// ErrInvalidStatuses is returned by Opposed when args does not start with two
// statuses in MinStatus..MaxStatus.
var ErrInvalidStatuses = errors.New("two statuses between 0 and 20 are required")

// Contestant is one side of an opposed roll.
type Contestant struct {
	Name   string
	Status int
}

// OpposedResult is a resistance-table roll. The active side wins when
// Total <= Chance.
type OpposedResult struct {
	Active  Contestant
	Passive Contestant
	Chance  int
	Total   int
}

// OpposedChance is the active side's chance to win: 50 plus 5 per point of
// status difference, clamped to 0..100.
func OpposedChance(active, passive int) int {
	return min(max(50+(active-passive)*5, 0), 100)
}

// ParseOpposed reads "<status1> <status2> [name1] [name2]".
func ParseOpposed(args string) (Contestant, Contestant, error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return Contestant{}, Contestant{}, ErrInvalidStatuses
	}

	var statuses [2]int
	for i := range statuses {
		n, err := strconv.Atoi(fields[i])
		if err != nil || n < MinStatus || n > MaxStatus {
			return Contestant{}, Contestant{}, ErrInvalidStatuses
		}
		statuses[i] = n
	}

	names := [2]string{"player1", "player2"}
	for i := range names {
		if len(fields) > 2+i {
			names[i] = fields[2+i]
		}
	}

	return Contestant{Name: names[0], Status: statuses[0]}, Contestant{Name: names[1], Status: statuses[1]}, nil
}

// Opposed rolls d100 with r for the contest described by args.
func Opposed(r dice.Roller, args string) (OpposedResult, error) {
	active, passive, err := ParseOpposed(args)
	if err != nil {
		return OpposedResult{}, err
	}
	out, err := r.Roll(PercentileExpression)
	if err != nil {
		return OpposedResult{}, fmt.Errorf("failed to roll %s: %w", PercentileExpression, err)
	}
	return OpposedResult{
		Active:  active,
		Passive: passive,
		Chance:  OpposedChance(active.Status, passive.Status),
		Total:   out.Total,
	}, nil
}

// ActiveWon reports whether the first contestant won.
func (r OpposedResult) ActiveWon() bool {
	return r.Total <= r.Chance
}

// Reply lists the winner first:
//
//	Result:
//	🥇 player1 12 (40 <= 60)
//	🥈 player2 10 (40 > 60)
func (r OpposedResult) Reply(comment string) string {
	activeLine := fmt.Sprintf("%s %d (%d &lt;= %d)", contestantName(r.Active), r.Active.Status, r.Total, r.Chance)
	passiveLine := fmt.Sprintf("%s %d (%d &gt; %d)", contestantName(r.Passive), r.Passive.Status, r.Total, r.Chance)

	first, second := activeLine, passiveLine
	if !r.ActiveWon() {
		first, second = passiveLine, activeLine
	}
	return withComment(comment, "Result:\n🥇 "+first+"\n🥈 "+second)
}

func contestantName(c Contestant) string {
	return bold(html.EscapeString(elide(c.Name, maxNameLength)))
}
