// Package formkit provides a small, self-contained field validation engine
// for named form fields with declarative per-field rules and a submission
// gate.
//
// The package tracks one state record per registered field (value, error,
// touched, dirty) and recomputes errors exclusively through the rule
// evaluator, never by hand-setting them. Rules are checked in a fixed
// precedence order and evaluation short-circuits at the first failure:
// required, email, min length, max length, pattern, custom. An empty
// optional value passes every rule without further checks.
//
// # Architecture
//
// Core building blocks:
//   - RuleSet  – declarative validation configuration for one field
//   - Evaluate – pure function mapping (value, rules) to an error message
//   - Form     – per-form engine owning the field states and event handlers
//
// Each Form instance is independent; there is no package-level state, so
// multiple forms can coexist safely. A Form guards its field map with a
// mutex and is safe for concurrent use, though the expected consumer is a
// single event-driven caller.
//
// # Usage
//
//	form := formkit.New()
//	email := form.Register("email", &formkit.RuleSet{Required: true, Email: true})
//	email.OnChange("user@example.com")
//	email.OnBlur()
//
//	ok := form.Submit(func(values map[string]string) {
//	    // every field passed; values holds name -> current value
//	})
//	if !ok {
//	    errs := form.Errors() // name -> message for each failing field
//	}
//
// Registration is idempotent: registering the same name again refreshes the
// stored rules but preserves the field's value, error, touched and dirty
// state, so callers may re-register on every render pass.
//
// # Validation timing
//
// By default errors are recomputed on every change and blur event. Both can
// be disabled independently with WithValidateOnChange and WithValidateOnBlur;
// Submit always runs an unconditional full-form pass regardless of either
// option.
//
// A form with no registered fields is never valid: Valid reports false and
// Submit returns false without invoking its callback.
package formkit
