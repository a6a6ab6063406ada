package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/fieldguard/pkg/environment"
	"github.com/dmitrymomot/fieldguard/pkg/logger"
)

const envPrefix = "FORMDEMO_"

// Config is read from FORMDEMO_* environment variables.
type Config struct {
	Env        string `env:"ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`
	LogFile    string `env:"LOG_FILE" envDefault:"formdemo.log"`
	WordsFile  string `env:"WORDS_FILE"`
	WatchWords bool   `env:"WATCH_WORDS" envDefault:"false"`
}

// newLogger builds the logger described by cfg. The terminal belongs to the
// form, so records go to LogFile; an empty LogFile discards them.
func newLogger(cfg Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return logger.Discard(), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), "formdemo"),
		logger.WithOutput(f),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), f, nil
}
