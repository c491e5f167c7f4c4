// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds every READYCHINA_* setting. Command-line flags override it.
type Config struct {
	DBPath      string        `env:"READYCHINA_DB"`
	ShareURL    string        `env:"READYCHINA_SHARE_URL"    envDefault:"https://readytochina.example"`
	LogLevel    string        `env:"READYCHINA_LOG_LEVEL"    envDefault:"info"`
	LogFile     string        `env:"READYCHINA_LOG_FILE"`
	ContentFile string        `env:"READYCHINA_CONTENT_FILE"`
	AnswerDelay time.Duration `env:"READYCHINA_ANSWER_DELAY" envDefault:"400ms"`
	QuizDelay   time.Duration `env:"READYCHINA_QUIZ_DELAY"   envDefault:"800ms"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the program can't use.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.AnswerDelay < 0 {
		return fmt.Errorf("answer delay must not be negative, got %s", c.AnswerDelay)
	}
	if c.QuizDelay < 0 {
		return fmt.Errorf("quiz delay must not be negative, got %s", c.QuizDelay)
	}
	return nil
}
