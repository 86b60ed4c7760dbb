package formkit

import (
	"regexp"
	"strings"
)

// Single-line email shape: local part, "@", dot-separated domain labels with
// a final label of at least two letters. Intentionally stricter than RFC 5322
// for typical web form use.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)

// Evaluate applies rules to value in fixed precedence order and returns the
// first failing rule's message, or "" when every rule passes. A nil rule set
// always passes. Evaluation short-circuits: no rule sees a value that failed
// an earlier rule, and an empty optional value passes without further checks.
func Evaluate(value string, rules *RuleSet) string {
	if rules == nil {
		return ""
	}

	trimmed := strings.TrimSpace(value)

	if rules.Required && trimmed == "" {
		return messageOr(rules.RequiredMessage, DefaultRequiredMessage)
	}

	// Optional and empty: nothing left to check.
	if trimmed == "" {
		return ""
	}

	if rules.Email && !emailPattern.MatchString(value) {
		return messageOr(rules.EmailMessage, DefaultEmailMessage)
	}

	if r := rules.MinLength; r != nil && len(value) < r.Threshold {
		return r.Message
	}

	if r := rules.MaxLength; r != nil && len(value) > r.Threshold {
		return r.Message
	}

	if r := rules.Pattern; r != nil && r.Expr != nil && !r.Expr.MatchString(value) {
		return r.Message
	}

	if rules.Custom != nil {
		return rules.Custom(value)
	}

	return ""
}

func messageOr(custom, fallback string) string {
	if custom != "" {
		return custom
	}
	return fallback
}
