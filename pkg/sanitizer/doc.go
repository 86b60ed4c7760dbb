// Package sanitizer provides string cleaning helpers for user-submitted form
// input. Values are normalized before validation and rendering: whitespace is
// trimmed and collapsed, control characters and line breaks are stripped
// where a single-line value is expected, and HTML special characters are
// escaped before the value can reach any rendered surface.
//
// All helpers are pure functions from string to string, so they compose
// freely with Apply:
//
//	clean := sanitizer.Apply(raw,
//	    sanitizer.Trim,
//	    sanitizer.CollapseWhitespace,
//	    sanitizer.StripControlChars,
//	)
//
// The package holds no state and is safe for concurrent use.
package sanitizer
