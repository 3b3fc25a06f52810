// Package config loads finlab settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/todoscontam/finlab/internal/currency"
	"github.com/todoscontam/finlab/internal/logger"
)

// Environment variable names.
const (
	EnvDB       = "FINLAB_DB"
	EnvLogLevel = "FINLAB_LOG_LEVEL"
	EnvAddr     = "FINLAB_ADDR"
	EnvCurrency = "FINLAB_CURRENCY"
	EnvSeed     = "FINLAB_SEED"
)

// Config holds process-wide settings.
type Config struct {
	// DBPath is the results database. Empty means the default XDG location.
	DBPath string

	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string

	// Addr is the listen address for the HTTP API.
	Addr string

	// Currency is the display currency for monetary output.
	Currency string

	// Seed fixes quiz sampling and simulations when set.
	Seed *uint64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "INFO",
		Addr:     ":8080",
		Currency: currency.Base,
	}
}

// Load reads a .env file when present, then FINLAB_* variables over the
// defaults. Unparseable values are reported and the default is kept.
func Load() Config {
	// A missing .env is normal outside development.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv applies FINLAB_* variables over the defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.DBPath = envOr(EnvDB, cfg.DBPath)
	cfg.LogLevel = strings.ToUpper(envOr(EnvLogLevel, cfg.LogLevel))
	cfg.Addr = envOr(EnvAddr, cfg.Addr)
	cfg.Currency = strings.ToUpper(envOr(EnvCurrency, cfg.Currency))
	cfg.Seed = envUint64(EnvSeed)
	return cfg
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if !logger.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("%s: unknown level %q", EnvLogLevel, c.LogLevel))
	}
	if c.Addr == "" {
		errs = append(errs, fmt.Errorf("%s cannot be empty", EnvAddr))
	}
	if !currency.Supported(c.Currency) {
		errs = append(errs, fmt.Errorf("%s: unsupported currency %q", EnvCurrency, c.Currency))
	}
	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envUint64(key string) *uint64 {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		logger.Warn("invalid value for %s=%q, ignoring", key, v)
		return nil
	}
	return &n
}
