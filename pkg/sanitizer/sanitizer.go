package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var multiSpace = regexp.MustCompile(`[ \t]{2,}`)

// Apply runs value through each transform in order and returns the result.
func Apply(value string, transforms ...func(string) string) string {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace replaces runs of spaces and tabs with a single space.
// Line breaks are preserved; use SingleLine to remove those.
func CollapseWhitespace(s string) string {
	return multiSpace.ReplaceAllString(s, " ")
}

// SingleLine replaces line breaks with single spaces, collapsing any
// resulting whitespace runs. Intended for values bound to one-line inputs.
func SingleLine(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

// StripControlChars removes non-printable control characters, keeping tabs
// and line breaks.
func StripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// EscapeHTML escapes HTML special characters.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// TruncateRunes limits s to max runes. A non-positive max returns s
// unchanged.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// NormalizeEmail lowercases an email address and trims surrounding
// whitespace. It performs no validation.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
