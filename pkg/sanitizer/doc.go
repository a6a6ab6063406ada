// Package sanitizer provides the text normalization helpers used by the field
// validators and word filters.
//
// The helpers are small, stateless functions:
//
//   - Trim, IsBlank – whitespace handling used by the Required and Password
//     checks.
//   - StripNonWord – removes every non-word character. Letters, combining
//     marks, decimal digits and connector punctuation (any script) are kept.
//   - ToLower – language-neutral lowercasing backed by golang.org/x/text/cases.
//   - NormalizeForFilter – StripNonWord followed by ToLower; this is the exact
//     normalization applied before exhaustive forbidden-word scanning.
//   - CollapseWhitespace – folds runs of whitespace into single spaces.
//
// Example:
//
//	sanitizer.NormalizeForFilter("X-Bad-Y") // "xbady"
//
// All functions are safe for concurrent use.
package sanitizer
