package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase using language-neutral case mapping.
// A new Caser is created per call because cases.Caser is not safe for
// concurrent use.
func ToLower(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}

// StripNonWord removes every character that is not a Unicode letter, mark,
// decimal digit or connector punctuation such as '_'. "x-bad-y" becomes
// "xbady"; "th1s 1s b@d" becomes "th1s1sbd"; "café!" becomes "café".
func StripNonWord(s string) string {
	return nonWordRegex.ReplaceAllString(s, "")
}

// CollapseWhitespace replaces runs of whitespace with a single space and trims
// the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// NormalizeForFilter prepares text for substring word filtering:
// non-word characters are stripped first, then the remainder is lowercased.
func NormalizeForFilter(s string) string {
	return ToLower(StripNonWord(s))
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return Trim(s) == ""
}
