package config

import (
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
)

// Config holds the settings of the curious command that can come from the environment.
// Command line flags take precedence over them.
type Config struct {
	Format   string `env:"CURIOUS_FORMAT" default:"json" enum:"json;yaml;cbor;"`
	LogLevel string `env:"CURIOUS_LOG_LEVEL" default:"warn" enum:"debug;info;warn;error;fatal;"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Level() logging.Level {
	return logging.Level(c.LogLevel)
}
