// Package config loads cubetimer settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DefaultScrambleLength is the standard 3x3 scramble length.
const DefaultScrambleLength = 20

type Config struct {
	Timer   Timer
	Storage Storage
	Log     Log
}

type Timer struct {
	ScrambleLength int    `env:"CUBETIMER_SCRAMBLE_LENGTH" envDefault:"20"`
	Inspection     bool   `env:"CUBETIMER_INSPECTION" envDefault:"false"`
	StrictAxis     bool   `env:"CUBETIMER_STRICT_AXIS" envDefault:"false"`
	Session        string `env:"CUBETIMER_SESSION"`
}

type Storage struct {
	DBPath string `env:"CUBETIMER_DB"`
}

type Log struct {
	Level string `env:"CUBETIMER_LOG_LEVEL" envDefault:"warn"`
	File  string `env:"CUBETIMER_LOG_FILE"`
}

// Load reads .env (if present) into the environment, then parses it.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current environment.
func Parse() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks values the environment cannot constrain.
func (c Config) Validate() error {
	if c.Timer.ScrambleLength < 0 {
		return errors.New("config: CUBETIMER_SCRAMBLE_LENGTH must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}
