package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	optional    bool
	environment map[string]string
}

// WithPrefix prepends prefix to every `env` tag, so `env:"LOG_LEVEL"` with
// prefix "FORMDEMO_" reads FORMDEMO_LOG_LEVEL.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Missing files are
// an error. Values already present in the process environment win.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
		o.optional = false
	}
}

// WithEnvironment parses from m instead of the process environment and skips
// .env loading entirely.
func WithEnvironment(m map[string]string) Option {
	return func(o *options) { o.environment = m }
}

// Load parses the environment into a new T using `env` and `envDefault`
// struct tags. Without WithEnvFiles it tries ./.env and ignores its absence.
//
//	type Config struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("FORMDEMO_"))
func Load[T any](opts ...Option) (T, error) {
	o := &options{optional: true}
	for _, opt := range opts {
		opt(o)
	}

	var cfg T

	if o.environment == nil {
		if err := loadEnvFiles(o); err != nil {
			return cfg, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the program cannot start without.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func loadEnvFiles(o *options) error {
	if len(o.files) == 0 {
		// The default .env file is optional.
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(o.files...); err != nil && !o.optional {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
