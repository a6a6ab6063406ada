package validator

import (
	"strconv"
	"unicode/utf8"

	"github.com/dmitrymomot/fieldguard/pkg/sanitizer"
	"github.com/dmitrymomot/fieldguard/pkg/wordfilter"
)

// Each check reports whether text satisfies the rule. Callers handle the
// empty-text skip before calling; checks only see text they must inspect.

func checkRequired(text string) bool {
	return !sanitizer.IsBlank(text)
}

func checkLetter(text string) bool {
	return !letterDisallowed.MatchString(text)
}

func checkAlphaNumeric(text string) bool {
	return !alphaNumericDisallowed.MatchString(text)
}

func checkMaxLength(text string, limit int) bool {
	return utf8.RuneCountInString(text) <= limit
}

func checkMinLength(text string, limit int) bool {
	return utf8.RuneCountInString(text) >= limit
}

func checkCharacterRange(text string, min, max int) bool {
	n := utf8.RuneCountInString(text)
	return n >= min && n <= max
}

func checkEmail(text string) bool {
	return emailPattern.MatchString(text)
}

func checkMobile(text string) bool {
	return !numericDisallowed.MatchString(text) && utf8.RuneCountInString(text) == mobileDigits
}

func checkPassword(text string) bool {
	return passwordPattern.MatchString(text) && !sanitizer.IsBlank(text)
}

func checkNumericRange(text string, min, max int) bool {
	n, err := strconv.Atoi(text)
	if err != nil {
		return false
	}
	return n >= min && n <= max
}

func checkFilterWordsBasic(list *wordfilter.List, text string) bool {
	_, found := wordfilter.Basic(list, text)
	return !found
}

func checkFilterWordsExhaustive(list *wordfilter.List, text string) bool {
	_, found := wordfilter.Exhaustive(list, text)
	return !found
}
