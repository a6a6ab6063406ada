package wordfilter

import "errors"

var (
	// ErrReadWordFile is returned when a word file cannot be read.
	ErrReadWordFile = errors.New("failed to read word file")

	// ErrParseWordFile is returned when a YAML word file is malformed.
	ErrParseWordFile = errors.New("failed to parse word file")

	// ErrWatcherRunning is returned by Watch when the watcher is already running.
	ErrWatcherRunning = errors.New("word file watcher already running")
)
