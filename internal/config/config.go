// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

type Config struct {
	Addr            string        `env:"SETTINGSYNC_ADDR"             envDefault:":8080"`
	LogLevel        string        `env:"SETTINGSYNC_LOG_LEVEL"        envDefault:"info"`
	LocationURL     string        `env:"SETTINGSYNC_LOCATION_URL"`
	DisplayName     string        `env:"SETTINGSYNC_DISPLAY_NAME"`
	ShutdownTimeout time.Duration `env:"SETTINGSYNC_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads Config from vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
