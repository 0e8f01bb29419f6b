// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` to pick up values from `.env` files and
// `github.com/caarlos0/env/v11` to parse the environment into a Go struct
// annotated with `env` tags. Process environment variables take precedence
// over values read from files.
//
// # Usage
//
//	type Config struct {
//		RulesFile string `env:"FORMCHECK_RULES" envDefault:"rules.yaml"`
//		LogFormat string `env:"FORMCHECK_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Failures are joined with the package sentinels so callers can match them
// with errors.Is: ErrParsingConfig for bad or missing values,
// ErrLoadingEnvFile for unreadable .env files and ErrNilPointer for a nil
// destination.
package config
