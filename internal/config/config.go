// Package config loads runtime settings from the environment.
//
// A `.env` file in the working directory is read first when present;
// real environment variables always win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the client reads from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`

	// Word lists; see words.Load for how the two interact.
	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`

	Rounds int  `env:"WORDLE_ROUNDS" envDefault:"6"`
	Length int  `env:"WORDLE_LENGTH" envDefault:"5"`
	Hints  bool `env:"WORDLE_HINTS" envDefault:"false"`

	// NoColor disables ANSI styling even on a terminal (https://no-color.org).
	NoColor string `env:"NO_COLOR"`
}

// Load reads .env files (if any) and parses the environment into a Config.
func Load(files ...string) (Config, error) {
	// Missing .env files are fine; anything else is not.
	if err := godotenv.Load(files...); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("WORDLE_ROUNDS must be at least 1, got %d", c.Rounds)
	}
	if c.Length < 1 {
		return fmt.Errorf("WORDLE_LENGTH must be at least 1, got %d", c.Length)
	}
	return nil
}

// ColorDisabled reports whether NO_COLOR was set to any value.
func (c Config) ColorDisabled() bool { return c.NoColor != "" }

func isNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }
