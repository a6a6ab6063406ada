package validator

import "regexp"

// Built-in patterns. Letter, AlphaNumeric and Mobile search for a disallowed
// character; Email and Password must match the whole text.
var (
	letterDisallowed       = regexp.MustCompile(`[^a-zA-Z ]`)
	alphaNumericDisallowed = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
	numericDisallowed      = regexp.MustCompile(`[^0-9]`)
	emailPattern           = regexp.MustCompile(`^(?:[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,4})$`)
	passwordPattern        = regexp.MustCompile(`^(?:.{6,12})$`)
)

const mobileDigits = 10
