// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for tag-driven parsing:
//
//	type Config struct {
//	    Env       string `env:"ENV" envDefault:"development"`
//	    WordsFile string `env:"WORDS_FILE"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("FORMDEMO_"))
//	if err != nil {
//	    return err
//	}
//
// By default Load tries ./.env and silently continues when it is absent.
// WithEnvFiles names explicit files that must exist. WithEnvironment replaces
// the process environment with a map, which keeps tests hermetic.
//
// # Error Handling
//
//   - ErrParsingConfig  – a value could not be parsed or a required
//     variable is missing.
//   - ErrLoadingEnvFile – an explicit .env file could not be read.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
