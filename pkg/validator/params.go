package validator

import (
	"errors"
	"fmt"

	playground "github.com/go-playground/validator/v10"
)

// params checks the `validate` struct tags declared on rule variants. The
// playground validator caches struct metadata and is safe for concurrent use.
var params = playground.New(playground.WithRequiredStructEnabled())

// CheckRules reports rules whose parameters are inconsistent: negative
// lengths, or a Max below Min. The engine itself never calls it; Form.Attach
// does, so bad rule sets are rejected when a form is set up.
func CheckRules(rules ...Rule) error {
	var errs []error
	for i, r := range rules {
		if err := checkRule(r); err != nil {
			errs = append(errs, fmt.Errorf("rule %d (%T): %w", i, r, err))
		}
	}
	return errors.Join(errs...)
}

func checkRule(r Rule) error {
	switch r.(type) {
	case nil:
		return ErrUnknownRule
	case Required, Letter, MaxLength, MinLength, Email, Mobile, Password,
		CharacterRange, AlphaNumeric, NumericRange, FilterWordsBasic, FilterWordsExhaustive:
	default:
		return ErrUnknownRule
	}

	if err := params.Struct(r); err != nil {
		var fieldErrs playground.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return errors.Join(ErrInvalidRule, describe(fieldErrs))
		}
		return errors.Join(ErrInvalidRule, err)
	}
	return nil
}

func describe(fieldErrs playground.ValidationErrors) error {
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "gte":
			errs = append(errs, fmt.Errorf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value()))
		case "gtefield":
			errs = append(errs, fmt.Errorf("%s must not be less than %s, got %v", fe.Field(), fe.Param(), fe.Value()))
		default:
			errs = append(errs, fmt.Errorf("%s failed %q", fe.Field(), fe.Tag()))
		}
	}
	return errors.Join(errs...)
}

// MustCheckRules panics if CheckRules fails. Useful for rule sets declared at
// package level, where a bad parameter is a programming error.
func MustCheckRules(rules ...Rule) RuleSet {
	if err := CheckRules(rules...); err != nil {
		panic(fmt.Sprintf("invalid rule set: %v", err))
	}
	return RuleSet(rules)
}
