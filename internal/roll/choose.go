package roll

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/edgard/cthulhubot/internal/dice"
)

// ErrNoChoices is returned by Choose when args holds no option.
var ErrNoChoices = errors.New("no choices given")

// Choice is the option picked among Options.
type Choice struct {
	Picked  string
	Options []string
}

// Choose picks one of the comma separated options in args uniformly.
// Options are trimmed and empty ones are dropped.
func Choose(src dice.Source, args string) (Choice, error) {
	var options []string
	for _, opt := range strings.Split(args, ",") {
		if opt = strings.TrimSpace(opt); opt != "" {
			options = append(options, opt)
		}
	}
	if len(options) == 0 {
		return Choice{}, ErrNoChoices
	}
	return Choice{Picked: options[src.Intn(len(options))], Options: options}, nil
}

// Reply renders "Result: 👉 <b>picked</b> (from a, b, c)".
func (c Choice) Reply(comment string) string {
	options := html.EscapeString(elide(strings.Join(c.Options, ", "), maxOptionsLength))
	body := fmt.Sprintf("Result: 👉 %s (from %s)", bold(html.EscapeString(elide(c.Picked, maxEchoLength))), options)
	return withComment(comment, body)
}
