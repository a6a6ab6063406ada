package validator

import (
	"fmt"

	"github.com/dmitrymomot/fieldguard/pkg/wordfilter"
)

// Option configures a Validator.
type Option func(*Validator)

// WithWords sets the source of forbidden words used by FilterWordsBasic and
// FilterWordsExhaustive. Nil sources are ignored.
func WithWords(src wordfilter.Source) Option {
	return func(v *Validator) {
		if src != nil {
			v.words = src
		}
	}
}

// WithWordList is a shortcut for WithWords(wordfilter.Static(l)).
func WithWordList(l *wordfilter.List) Option {
	return WithWords(wordfilter.Static(l))
}

// Validator evaluates rule sets against field text. It holds no mutable
// state of its own and is safe for concurrent use as long as its word Source
// is.
type Validator struct {
	words wordfilter.Source
}

// New creates a Validator. Without WithWords no word is forbidden.
func New(opts ...Option) *Validator {
	v := &Validator{words: wordfilter.Static(nil)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// checkFunc evaluates one rule against text. It reports whether the rule
// holds and, when it does not, the message to surface.
type checkFunc func(r Rule, text string, words *wordfilter.List) (ok bool, msg string, err error)

// Validate checks text against rules in order and stops at the first rule
// that fails. A nil text is treated as empty; Required fails on it.
//
// On failure it returns a *ValidationError carrying field and the failing
// rule's message. A nil or unrecognised Rule yields an error wrapping
// ErrUnknownRule.
func (v *Validator) Validate(field string, text *string, rules ...Rule) error {
	var value string
	if text != nil {
		value = *text
	}
	return v.evaluate(field, value, rules, check)
}

// ValidateText is Validate for text that is always present.
func (v *Validator) ValidateText(field, text string, rules ...Rule) error {
	return v.Validate(field, &text, rules...)
}

func (v *Validator) evaluate(field, text string, rules []Rule, fn checkFunc) error {
	if len(rules) == 0 {
		return nil
	}

	// One snapshot per pass, so a concurrent Store.Replace cannot change the
	// list between two filter rules of the same field.
	words := v.words.Words()

	for i, r := range rules {
		ok, msg, err := fn(r, text, words)
		if err != nil {
			return fmt.Errorf("field %q rule %d: %w", field, i, err)
		}
		if !ok {
			return &ValidationError{Field: field, Message: msg}
		}
	}
	return nil
}

// check dispatches r to its variant check. Empty text satisfies every
// variant except Required and NumericRange.
func check(r Rule, text string, words *wordfilter.List) (bool, string, error) {
	empty := text == ""

	switch r := r.(type) {
	case Required:
		return checkRequired(text), r.Message, nil
	case NumericRange:
		return checkNumericRange(text, r.Min, r.Max), r.Message, nil
	case Letter:
		return empty || checkLetter(text), r.Message, nil
	case MaxLength:
		return empty || checkMaxLength(text, r.Limit), r.Message, nil
	case MinLength:
		return empty || checkMinLength(text, r.Limit), r.Message, nil
	case Email:
		return empty || checkEmail(text), r.Message, nil
	case Mobile:
		return empty || checkMobile(text), r.Message, nil
	case Password:
		return empty || checkPassword(text), r.Message, nil
	case CharacterRange:
		return empty || checkCharacterRange(text, r.Min, r.Max), r.Message, nil
	case AlphaNumeric:
		return empty || checkAlphaNumeric(text), r.Message, nil
	case FilterWordsBasic:
		return empty || checkFilterWordsBasic(words, text), r.Message, nil
	case FilterWordsExhaustive:
		return empty || checkFilterWordsExhaustive(words, text), r.Message, nil
	case nil:
		return false, "", ErrUnknownRule
	default:
		return false, "", fmt.Errorf("%w: %T", ErrUnknownRule, r)
	}
}
