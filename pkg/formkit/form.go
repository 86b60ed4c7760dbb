package formkit

import "sync"

// field is the internal state record tracked per registered field name.
type field struct {
	value   string
	err     string
	touched bool
	dirty   bool
	rules   *RuleSet
}

// Form is the validation engine for a single form. Each form owns its
// field states exclusively; instances are independent of each other.
type Form struct {
	mu               sync.Mutex
	fields           map[string]*field
	validateOnChange bool
	validateOnBlur   bool
}

// Option configures a Form at construction time.
type Option func(*Form)

// WithValidateOnChange controls whether change events recompute the field's
// error. Enabled by default.
func WithValidateOnChange(enabled bool) Option {
	return func(f *Form) { f.validateOnChange = enabled }
}

// WithValidateOnBlur controls whether blur events recompute the field's
// error. Enabled by default.
func WithValidateOnBlur(enabled bool) Option {
	return func(f *Form) { f.validateOnBlur = enabled }
}

// New returns an empty Form with validate-on-change and validate-on-blur
// both enabled unless overridden by options.
func New(opts ...Option) *Form {
	f := &Form{
		fields:           make(map[string]*field),
		validateOnChange: true,
		validateOnBlur:   true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ensure returns the named field, creating it with zero state if absent.
// Callers must hold f.mu.
func (f *Form) ensure(name string) *field {
	fld, ok := f.fields[name]
	if !ok {
		fld = &field{}
		f.fields[name] = fld
	}
	return fld
}

// Field is the per-field view handed back by Register: the current value and
// error plus bound change and blur handlers. Handlers take the raw string
// value; translating from any particular input event shape is the caller's
// concern.
type Field struct {
	Value    string
	Error    string
	OnChange func(value string)
	OnBlur   func()
}

// Register ensures a field state exists for name and returns its current
// view. Registering an existing name refreshes the stored rules but never
// resets value, error, touched or dirty state, so Register is safe to call
// repeatedly for the same field.
func (f *Form) Register(name string, rules *RuleSet) Field {
	f.mu.Lock()
	fld := f.ensure(name)
	fld.rules = rules
	value, err := fld.value, fld.err
	f.mu.Unlock()

	return Field{
		Value:    value,
		Error:    err,
		OnChange: func(v string) { f.change(name, v) },
		OnBlur:   func() { f.blur(name) },
	}
}

func (f *Form) change(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fld := f.ensure(name)
	fld.value = value
	fld.dirty = true
	if f.validateOnChange {
		fld.err = Evaluate(value, fld.rules)
	}
}

func (f *Form) blur(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fld := f.ensure(name)
	fld.touched = true
	if f.validateOnBlur {
		fld.err = Evaluate(fld.value, fld.rules)
	}
}

// SetValue assigns a value programmatically, creating the field with no
// rules if it was never registered. The field becomes dirty; the error is
// recomputed only when validate-on-change is enabled.
func (f *Form) SetValue(name, value string) {
	f.change(name, value)
}

// Submit runs an unconditional validation pass over every registered field,
// marking each touched and refreshing its error, regardless of the
// validate-on-change and validate-on-blur options. When every field passes
// it invokes onValid with a snapshot of name -> value and returns true.
// A form with no registered fields is never valid and returns false.
func (f *Form) Submit(onValid func(values map[string]string)) bool {
	f.mu.Lock()
	valid := len(f.fields) > 0
	values := make(map[string]string, len(f.fields))
	for name, fld := range f.fields {
		fld.touched = true
		fld.err = Evaluate(fld.value, fld.rules)
		if fld.err != "" {
			valid = false
		}
		values[name] = fld.value
	}
	f.mu.Unlock()

	if !valid {
		return false
	}
	if onValid != nil {
		onValid(values)
	}
	return true
}

// Valid reports whether every registered field currently passes its rules.
// It evaluates fresh against each field's current value, independent of the
// stored errors, so it reflects values that changed while validation events
// were disabled. A form with no registered fields reports false.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.fields) == 0 {
		return false
	}
	for _, fld := range f.fields {
		if Evaluate(fld.value, fld.rules) != "" {
			return false
		}
	}
	return true
}

// Values returns a snapshot of every registered field's current value.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := make(map[string]string, len(f.fields))
	for name, fld := range f.fields {
		values[name] = fld.value
	}
	return values
}

// Errors returns the current error message for every failing field. Fields
// whose stored error is empty are omitted.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(map[string]string)
	for name, fld := range f.fields {
		if fld.err != "" {
			errs[name] = fld.err
		}
	}
	return errs
}

// Touched reports whether the named field has received a blur event or
// participated in a submit-time validation pass. Unregistered names report
// false.
func (f *Form) Touched(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	fld, ok := f.fields[name]
	return ok && fld.touched
}

// Dirty reports whether the named field's value has ever been changed from
// its initial empty state. Unregistered names report false.
func (f *Form) Dirty(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	fld, ok := f.fields[name]
	return ok && fld.dirty
}

// Reset returns every registered field to its initial state: empty value,
// no error, not touched, not dirty. Rules and field identity are preserved.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, fld := range f.fields {
		fld.value = ""
		fld.err = ""
		fld.touched = false
		fld.dirty = false
	}
}
