package wordfilter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/fieldguard/pkg/logger"
)

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period after the last file event before the
// list is reloaded. Non-positive values are ignored.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// WithReloadHook registers fn to run after every reload attempt with the new
// list, or with the load error. The previous list stays active on error.
func WithReloadHook(fn func(*List, error)) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// Watcher reloads a word file into a Store whenever the file changes on disk.
// The parent directory is watched rather than the file itself so that editors
// replacing the file through rename are handled.
type Watcher struct {
	path     string
	store    *Store
	log      *slog.Logger
	debounce time.Duration
	onReload func(*List, error)

	fsw *fsnotify.Watcher

	mu      sync.Mutex
	running bool
	closed  bool
}

// NewWatcher creates a Watcher for path feeding store.
func NewWatcher(path string, store *Store, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve word file path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		path:     filepath.Clean(abs),
		store:    store,
		log:      slog.Default(),
		debounce: 100 * time.Millisecond,
		fsw:      fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch blocks until ctx is cancelled or Close is called, reloading the word
// file after each burst of write, create or rename events.
func (w *Watcher) Watch(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return ErrWatcherRunning
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	dir := filepath.Dir(w.path)
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	w.log.Info("word file watcher started",
		logger.Path(w.path),
		slog.Int64("debounce_ms", w.debounce.Milliseconds()),
	)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("word file watcher stopped", logger.Path(w.path))
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("word file event",
				logger.Path(event.Name),
				slog.String("op", event.Op.String()),
			)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("word file watcher error", logger.Error(err))
		}
	}
}

// Close releases the underlying fsnotify watcher, which also ends Watch.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.fsw.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) reload() {
	list, err := LoadFile(w.path)
	if err != nil {
		w.log.Error("word file reload failed",
			logger.Path(w.path),
			logger.Error(err),
		)
	} else {
		w.store.Replace(list)
		w.log.Info("word file reloaded",
			logger.Path(w.path),
			logger.Group("words",
				slog.Int("count", list.Len()),
				slog.Int("max_len", list.MaxWordLen()),
			),
		)
	}
	if w.onReload != nil {
		w.onReload(list, err)
	}
}
