package validator

import (
	"errors"
	"fmt"
)

// Values holds the current text of each field by name. A missing key means
// the field has no text at all, which only Required and NumericRange treat
// differently from an empty string.
type Values map[string]string

// Form maps field names to their rule sets and validates them in the order
// the fields were first attached. A Form is built once during setup and read
// afterwards; Attach must not run concurrently with validation.
type Form struct {
	v      *Validator
	order  []string
	fields map[string]RuleSet
}

// NewForm returns an empty Form evaluated by v. A nil v uses New().
func NewForm(v *Validator) *Form {
	if v == nil {
		v = New()
	}
	return &Form{
		v:      v,
		fields: make(map[string]RuleSet),
	}
}

// Attach sets the rules for name after checking their parameters. Attaching
// to an existing name replaces its rules but keeps its position.
func (f *Form) Attach(name string, rules ...Rule) error {
	if name == "" {
		return ErrEmptyFieldName
	}
	if err := CheckRules(rules...); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}

	if _, ok := f.fields[name]; !ok {
		f.order = append(f.order, name)
	}
	set := make(RuleSet, len(rules))
	copy(set, rules)
	f.fields[name] = set
	return nil
}

// MustAttach is Attach that panics on error.
func (f *Form) MustAttach(name string, rules ...Rule) *Form {
	if err := f.Attach(name, rules...); err != nil {
		panic(err)
	}
	return f
}

// Rules returns a copy of the rules attached to name.
func (f *Form) Rules(name string) (RuleSet, error) {
	set, ok := f.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	out := make(RuleSet, len(set))
	copy(out, set)
	return out, nil
}

// Fields returns the field names in validation order.
func (f *Form) Fields() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// ValidateField runs the rules of one field.
func (f *Form) ValidateField(name string, values Values) error {
	set, ok := f.fields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f.v.Validate(name, lookup(values, name), set...)
}

// Validate checks fields in order and returns the first failure, leaving the
// remaining fields unchecked.
func (f *Form) Validate(values Values) error {
	for _, name := range f.order {
		if err := f.v.Validate(name, lookup(values, name), f.fields[name]...); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll checks every field and returns ValidationErrors holding the
// first failure of each failing field. Errors other than rule failures stop
// the pass and are returned as is.
func (f *Form) ValidateAll(values Values) error {
	var errs ValidationErrors
	for _, name := range f.order {
		err := f.v.Validate(name, lookup(values, name), f.fields[name]...)
		if err == nil {
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		errs.Add(*ve)
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func lookup(values Values, name string) *string {
	text, ok := values[name]
	if !ok {
		return nil
	}
	return &text
}
