// Package validator implements declarative, fail-fast validation of text
// fields.
//
// A field gets an ordered RuleSet. Validator.Validate walks the rules in
// order against the field's current text and returns at the first rule that
// does not hold, reporting that rule's message in a *ValidationError together
// with the field name. Rules after the failing one are never evaluated.
//
// # Rules
//
// Rule is a closed set of plain value types:
//
//	Required, Letter, MaxLength, MinLength, Email, Mobile, Password,
//	CharacterRange, AlphaNumeric, NumericRange,
//	FilterWordsBasic, FilterWordsExhaustive
//
// Each carries its parameters and the message to show on failure. Empty text
// satisfies every rule except Required and NumericRange, so a field the user
// has not typed into yet only reports "required" problems. NumericRange fails
// on empty text because the empty string does not parse as an integer.
//
// Lengths are counted in runes. Letter, AlphaNumeric, Mobile and Email are
// ASCII-only patterns.
//
// # Forbidden words
//
// The two filter rules read a word list from the wordfilter.Source given with
// WithWords. Nothing is global: independent validators can use independent
// lists, and a wordfilter.Store lets the list change at runtime while
// validations run.
//
// # Usage
//
//	v := validator.New(validator.WithWordList(wordfilter.NewList("bad")))
//
//	err := v.ValidateText("age", input,
//	    validator.Required{Message: "Age is required"},
//	    validator.NumericRange{Min: 18, Max: 70, Message: "Invalid age value"},
//	)
//	if ve := validator.ExtractValidationError(err); ve != nil {
//	    show(ve.Field, ve.Message)
//	}
//
// Form keeps the field-to-rules mapping for callers that validate several
// fields together. Form.Attach checks rule parameters with CheckRules, so a
// CharacterRange with Min > Max is rejected during setup rather than silently
// failing every input.
//
//	form := validator.NewForm(v)
//	form.MustAttach("email", validator.Email{Message: "Invalid email address"})
//	form.MustAttach("mobile", validator.Mobile{Message: "Invalid mobile number"})
//
//	if err := form.Validate(validator.Values{"email": email, "mobile": mobile}); err != nil {
//	    // first failing field, in attach order
//	}
//
// # Error Handling
//
// Rule failures are *ValidationError values (or ValidationErrors from
// Form.ValidateAll) and match ErrValidationFailed with errors.Is. A nil or
// foreign Rule produces an error wrapping ErrUnknownRule instead, which
// IsValidationError reports as false.
package validator
