package roll

import (
	"html"
	"unicode/utf8"
)

// MaxMessageLength is the longest text Telegram accepts in one message,
// counted in characters after entity parsing.
const MaxMessageLength = 4096

// Display limits for user supplied text echoed back in a reply.
const (
	maxCommentLength = 256
	maxEchoLength    = 256
	maxOptionsLength = 2048
	maxNameLength    = 64
)

func bold(s string) string {
	return "<b>" + s + "</b>"
}

// withComment prefixes body with the quoted comment, if any.
func withComment(comment, body string) string {
	if comment == "" {
		return body
	}
	return `"` + html.EscapeString(elide(comment, maxCommentLength)) + `" ` + body
}

// elide shortens s to at most maxRunes runes, marking the cut with "…".
func elide(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes-1]) + "…"
}
