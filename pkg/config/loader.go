package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load parses environment variables into the struct pointed to by v using
// `env` field tags.
//
// When envFiles are given they are loaded first and must exist. Without
// them the default .env in the working directory is loaded if present.
// Variables already set in the process environment always win over .env
// values.
//
// Example:
//
//	type Config struct {
//		RulesFile string `env:"FORMCHECK_RULES" envDefault:"rules.yaml"`
//		LogLevel  string `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, envFiles ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		// The default .env is optional.
		_ = godotenv.Load()
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, envFiles ...string) {
	if err := Load(v, envFiles...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
