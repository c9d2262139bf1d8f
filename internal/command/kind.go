package command

// Kind identifies what a recognized command does.
type Kind int

const (
	KindUnknown Kind = iota
	KindRoll
	KindCustomRoll
	KindCreateSheet
	KindChoose
	KindHelp
	KindSkill
	KindSkill7
	KindOpposed
)

func (k Kind) String() string {
	switch k {
	case KindRoll:
		return "roll"
	case KindCustomRoll:
		return "custom_roll"
	case KindCreateSheet:
		return "create_sheet"
	case KindChoose:
		return "choose"
	case KindHelp:
		return "help"
	case KindSkill:
		return "skill"
	case KindSkill7:
		return "sk7"
	case KindOpposed:
		return "op6"
	default:
		return "unknown"
	}
}

// names maps every accepted token, aliases included, to its kind.
// Matching is exact and case-sensitive.
var names = map[string]Kind{
	"r":            KindRoll,
	"roll":         KindRoll,
	"cr":           KindCustomRoll,
	"custom_roll":  KindCustomRoll,
	"cs":           KindCreateSheet,
	"create_sheet": KindCreateSheet,
	"choose":       KindChoose,
	"help":         KindHelp,
	"start":        KindHelp,
	"skill":        KindSkill,
	"sk5":          KindSkill,
	"roll6":        KindSkill,
	"r6":           KindSkill,
	"sk7":          KindSkill7,
	"op6":          KindOpposed,
}

// Lookup returns the kind of the command token name.
func Lookup(name string) (Kind, bool) {
	k, ok := names[name]
	return k, ok
}
