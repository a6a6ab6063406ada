// Package wordfilter holds forbidden-word lists and the two algorithms used to
// detect them in field text.
//
// # Lists and sources
//
// A List is an immutable set built with NewList or loaded from disk with
// LoadFile (YAML or plain text). Validators never read a List directly; they
// ask a Source for the list in effect. Static wraps a fixed List, while Store
// allows the list to be replaced at runtime under a read/write lock. A
// Watcher keeps a Store in sync with a file using fsnotify.
//
//	store := wordfilter.NewStore(wordfilter.NewList("bad", "worse"))
//	w, err := wordfilter.NewWatcher("words.yaml", store, wordfilter.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	go w.Watch(ctx)
//
// # Matching
//
// Basic splits text on single spaces and looks each token up exactly, so
// "this is bad" matches "bad" while "thisisbad" does not.
//
// Exhaustive strips every non-word character (letters, marks and digits of any
// script are kept), lowercases the rest and checks every
// contiguous substring, so "x-bad-y" (normalized to "xbady") matches "bad".
// Listed words are compared as given; store them already lowercased and
// without punctuation for Exhaustive to find them.
package wordfilter
