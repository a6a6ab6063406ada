package wordfilter

import (
	"strings"

	"github.com/dmitrymomot/fieldguard/pkg/sanitizer"
)

// Basic splits text on the single space character and reports the first token
// that exactly equals a listed word. Empty tokens produced by consecutive
// spaces are skipped. Matching is case-sensitive and tokens are not
// normalized. Listed words were trimmed by NewList, so a configured " bad "
// matches the token "bad".
func Basic(l *List, text string) (string, bool) {
	if l.Len() == 0 || text == "" {
		return "", false
	}
	tokens := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' })
	for _, tok := range tokens {
		if l.Contains(tok) {
			return tok, true
		}
	}
	return "", false
}

// Exhaustive normalizes text with sanitizer.NormalizeForFilter (non-word
// characters of any script removed, then lowercased) and then checks
// every contiguous substring, at every rune offset, for exact membership in l.
// Windows longer than l.MaxWordLen cannot match and are not built, which keeps
// the scan at O(n·k) for a longest word of k runes and O(n²) in the worst case.
//
// The returned word is the first match ordered by start offset, then length.
func Exhaustive(l *List, text string) (string, bool) {
	if l.Len() == 0 || text == "" {
		return "", false
	}
	runes := []rune(sanitizer.NormalizeForFilter(text))
	n := len(runes)
	limit := l.MaxWordLen()

	for start := 0; start <= n; start++ {
		end := start + limit
		if end > n {
			end = n
		}
		for stop := start; stop <= end; stop++ {
			if sub := string(runes[start:stop]); l.Contains(sub) {
				return sub, true
			}
		}
	}
	return "", false
}
