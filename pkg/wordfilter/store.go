package wordfilter

import "sync"

// Source yields the word list in effect at the time of the call.
// Implementations must be safe for concurrent use and must never mutate a
// List after returning it.
type Source interface {
	Words() *List
}

// static adapts an immutable *List to Source.
type static struct{ list *List }

func (s static) Words() *List { return s.list }

// Static wraps an immutable list as a Source.
func Static(l *List) Source {
	return static{list: l}
}

// Store is a Source whose list can be swapped at runtime. Readers always see
// either the previous or the new list in full, never a partial update.
type Store struct {
	mu   sync.RWMutex
	list *List
}

// NewStore returns a Store holding l. A nil l behaves as an empty list.
func NewStore(l *List) *Store {
	return &Store{list: l}
}

// Words returns the current list.
func (s *Store) Words() *List {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list
}

// Replace swaps the current list for l.
func (s *Store) Replace(l *List) {
	s.mu.Lock()
	s.list = l
	s.mu.Unlock()
}
