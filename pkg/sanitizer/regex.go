package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Runs of non-word characters. Word characters are Unicode letters,
	// marks, decimal digits and connector punctuation, so "café" survives.
	nonWordRegex = regexp.MustCompile(`[^\p{L}\p{M}\p{Nd}\p{Pc}]+`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
