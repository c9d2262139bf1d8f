// Package command tokenizes slash commands of the form
//
//	/name [arguments] [#comment]
//
// and maps command names to the bot's command kinds.
package command

import (
	"strings"
	"unicode"
)

// Marker is the character every command line starts with.
const Marker = '/'

// Command is a tokenized command line. Empty Args or Comment means the part
// was absent.
type Command struct {
	Name    string
	Args    string
	Comment string
}

// Parse tokenizes line. It returns false when line is not a command: empty,
// not starting with Marker, or with an empty command name.
//
// The name is the longest run after the marker of characters that are neither
// whitespace nor '#'. Arguments follow the name after whitespace and run up to
// the first unescaped '#'; "\#" stands for a literal '#'. The comment is the
// rest of that line after the '#'. Args and Comment are trimmed.
func Parse(line string) (Command, bool) {
	if line == "" || line[0] != Marker {
		return Command{}, false
	}

	rest := line[1:]
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r == '#' || isSpace(r)
	})
	if end < 0 {
		end = len(rest)
	}
	if end == 0 {
		return Command{}, false
	}

	cmd := Command{Name: rest[:end]}
	rest = rest[end:]

	argRegion, comment, hasComment := cutUnescapedHash(rest)
	if hasComment {
		if nl := strings.IndexByte(comment, '\n'); nl >= 0 {
			comment = comment[:nl]
		}
		cmd.Comment = strings.TrimSpace(comment)
	}

	// Arguments must be separated from the name by whitespace.
	if argRegion != "" && startsWithSpace(argRegion) {
		cmd.Args = strings.TrimSpace(strings.ReplaceAll(argRegion, `\#`, "#"))
	}

	return cmd, true
}

// cutUnescapedHash splits s around the first '#' not preceded by a backslash.
func cutUnescapedHash(s string) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '#' {
			continue
		}
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return isSpace(r)
	}
	return false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
