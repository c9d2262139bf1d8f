package roll

import (
	"fmt"
	"strings"

	"github.com/edgard/cthulhubot/internal/dice"
)

// Attribute is a character characteristic and the expression it is rolled
// with. Label is how the expression is shown in the reply.
type Attribute struct {
	Emoji      string
	Name       string
	Expression string
	Label      string
}

// SheetAttributes lists the characteristics in the order they are rolled and
// displayed.
var SheetAttributes = []Attribute{
	{Emoji: "🗡️", Name: "STR", Expression: "3d6", Label: "3d6"},
	{Emoji: "☂️", Name: "CON", Expression: "3d6", Label: "3d6"},
	{Emoji: "❤️", Name: "POW", Expression: "3d6", Label: "3d6"},
	{Emoji: "💨", Name: "DEX", Expression: "3d6", Label: "3d6"},
	{Emoji: "⭐", Name: "APP", Expression: "3d6", Label: "3d6"},
	{Emoji: "🐘", Name: "SIZ", Expression: "2d6+6", Label: "2d6 + 6"},
	{Emoji: "💡", Name: "INT", Expression: "2d6+6", Label: "2d6 + 6"},
	{Emoji: "📚", Name: "EDU", Expression: "3d6+3", Label: "3d6 + 3"},
}

// RolledAttribute is an attribute with its own outcome.
type RolledAttribute struct {
	Attribute
	Outcome dice.Outcome
}

// Sheet rolls every attribute once, independently, in SheetAttributes order.
func Sheet(r dice.Roller) ([]RolledAttribute, error) {
	rolled := make([]RolledAttribute, 0, len(SheetAttributes))
	for _, attr := range SheetAttributes {
		out, err := r.Roll(attr.Expression)
		if err != nil {
			return nil, fmt.Errorf("failed to roll %s (%s): %w", attr.Name, attr.Expression, err)
		}
		rolled = append(rolled, RolledAttribute{Attribute: attr, Outcome: out})
	}
	return rolled, nil
}

// SheetReply renders one line per attribute under a "Result:" header.
func SheetReply(attrs []RolledAttribute, comment string) string {
	var sb strings.Builder
	sb.WriteString("Result:")
	for _, a := range attrs {
		fmt.Fprintf(&sb, "\n%s %s %s (%s : %s)",
			a.Emoji, a.Name, bold(fmt.Sprint(a.Outcome.Total)), a.Label, a.Outcome.ComponentsString())
	}
	return withComment(comment, sb.String())
}
