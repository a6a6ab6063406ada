// Command formdemo is a terminal form showing every validation rule: nine
// inputs, each with its own rule set, validated in order on submit.
//
// Configuration comes from FORMDEMO_* environment variables (or a .env file):
//
//	FORMDEMO_ENV          development | staging | production
//	FORMDEMO_LOG_LEVEL    debug | info | warn | error
//	FORMDEMO_LOG_FORMAT   json | text
//	FORMDEMO_LOG_FILE     log destination, empty to discard (default formdemo.log)
//	FORMDEMO_WORDS_FILE   forbidden words, .yaml/.yml or one word per line
//	FORMDEMO_WATCH_WORDS  reload FORMDEMO_WORDS_FILE when it changes
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/fieldguard/pkg/config"
	"github.com/dmitrymomot/fieldguard/pkg/logger"
	"github.com/dmitrymomot/fieldguard/pkg/validator"
	"github.com/dmitrymomot/fieldguard/pkg/wordfilter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "formdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load[Config](config.WithPrefix(envPrefix))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closer, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer closer.Close()
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := loadWords(cfg, log)
	if err != nil {
		return err
	}

	if cfg.WatchWords && cfg.WordsFile != "" {
		w, err := wordfilter.NewWatcher(cfg.WordsFile, store, wordfilter.WithLogger(log))
		if err != nil {
			return fmt.Errorf("watch words: %w", err)
		}
		defer w.Close()
		go func() {
			if err := w.Watch(ctx); err != nil {
				log.Error("word file watcher stopped", logger.Error(err))
			}
		}()
	}

	form, err := newDemoForm(validator.New(validator.WithWords(store)))
	if err != nil {
		return fmt.Errorf("build form: %w", err)
	}

	log.Info("formdemo started", slog.Int("fields", len(form.Fields())), slog.Int("words", store.Words().Len()))

	prog := tea.NewProgram(newFormModel(form, demoFields, log), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run form: %w", err)
	}

	if m, ok := final.(*formModel); ok && m.success {
		fmt.Println("Success")
	}
	return nil
}

func loadWords(cfg Config, log *slog.Logger) (*wordfilter.Store, error) {
	if cfg.WordsFile == "" {
		return wordfilter.NewStore(wordfilter.NewList(defaultWords...)), nil
	}

	list, err := wordfilter.LoadFile(cfg.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	log.Info("forbidden words loaded", logger.Path(cfg.WordsFile), slog.Int("words", list.Len()))
	return wordfilter.NewStore(list), nil
}
