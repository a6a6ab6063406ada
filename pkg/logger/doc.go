// Package logger builds log/slog loggers from functional options.
//
// New returns a *slog.Logger writing JSON at info level to stdout unless
// options say otherwise:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "formdemo"),
//	    logger.WithOutput(file),
//	)
//
// WithEnvironment applies presets (text/debug for development, JSON/info for
// staging and production) and tags every record with service and env.
// ParseLevel turns configuration strings into slog levels.
//
// The attr helpers (Error, Errors, Group, Field, Path) keep attribute keys
// consistent across packages.
package logger
