package wordfilter

import (
	"strings"
	"unicode/utf8"
)

// List is an immutable set of forbidden words. The zero value and a nil *List
// are both valid empty lists.
type List struct {
	set     map[string]struct{}
	ordered []string
	maxLen  int
}

// NewList builds a List from words. Entries are trimmed, empty entries are
// dropped and duplicates collapse to their first occurrence.
func NewList(words ...string) *List {
	l := &List{
		set:     make(map[string]struct{}, len(words)),
		ordered: make([]string, 0, len(words)),
	}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := l.set[w]; ok {
			continue
		}
		l.set[w] = struct{}{}
		l.ordered = append(l.ordered, w)
		if n := utf8.RuneCountInString(w); n > l.maxLen {
			l.maxLen = n
		}
	}
	return l
}

// Contains reports whether w is an exact member of the list.
func (l *List) Contains(w string) bool {
	if l == nil {
		return false
	}
	_, ok := l.set[w]
	return ok
}

// Len returns the number of distinct words.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.ordered)
}

// Words returns a copy of the words in insertion order.
func (l *List) Words() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.ordered))
	copy(out, l.ordered)
	return out
}

// MaxWordLen returns the rune length of the longest word.
func (l *List) MaxWordLen() int {
	if l == nil {
		return 0
	}
	return l.maxLen
}
