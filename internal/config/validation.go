package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ValidateConfig checks value ranges and normalizes the log level.
func ValidateConfig(config *Config) error {
	if config.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, config.Workers)
	}

	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log validation failed: %w", err)
	}

	return nil
}

// Validate checks the log level against the levels logrus knows.
func (l *LogConfig) Validate() error {
	level := strings.ToLower(strings.TrimSpace(l.Level))
	if level == "" {
		level = DefaultLogLevel
	}
	if _, err := logrus.ParseLevel(level); err != nil {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, l.Level)
	}
	l.Level = level
	return nil
}
