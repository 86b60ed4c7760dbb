package formkit

import "regexp"

// Default messages used when a rule is enabled without a custom message.
const (
	DefaultRequiredMessage = "This field is required"
	DefaultEmailMessage    = "Please enter a valid email address"
)

// CustomFunc is a caller-supplied validation rule. It receives the field's
// current value and returns an error message, or "" when the value passes.
// A panicking CustomFunc is not recovered; panics propagate to the caller.
type CustomFunc func(value string) string

// LengthRule bounds the length of a value in bytes.
type LengthRule struct {
	Threshold int
	Message   string
}

// PatternRule matches a value against a compiled regular expression.
type PatternRule struct {
	Expr    *regexp.Regexp
	Message string
}

// RuleSet is the declarative validation configuration for a single field.
// The zero value enables no rules. Required and Email use their default
// messages unless the corresponding *Message field is set.
type RuleSet struct {
	Required        bool
	RequiredMessage string

	Email        bool
	EmailMessage string

	MinLength *LengthRule
	MaxLength *LengthRule
	Pattern   *PatternRule

	Custom CustomFunc
}
