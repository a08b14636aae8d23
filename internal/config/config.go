// Package config loads runtime defaults from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAddr      = "GOSECTION_ADDR"
	EnvRate      = "GOSECTION_RATE"
	EnvBurst     = "GOSECTION_BURST"
	EnvUnit      = "GOSECTION_UNIT"
	EnvPrecision = "GOSECTION_PRECISION"
)

// Config holds runtime settings shared by the CLI and the server
type Config struct {
	// Addr is the listen address of the HTTP server
	Addr string

	// Rate is the number of requests per second allowed per client, and
	// Burst the number allowed at once
	Rate  float64
	Burst int

	// Unit labels lengths when a section file does not name one
	Unit string

	// Precision is the number of decimals printed in tables and reports
	Precision int
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Addr:      ":8080",
		Rate:      5,
		Burst:     10,
		Unit:      "mm",
		Precision: 2,
	}
}

// Load reads the .env files (default ".env") into the environment without
// overriding variables that are already set, then applies the environment
// over the defaults. Missing files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv applies the GOSECTION_* environment variables over the defaults
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvUnit); v != "" {
		cfg.Unit = v
	}
	if v := os.Getenv(EnvRate); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive number, got %q", EnvRate, v)
		}
		cfg.Rate = r
	}
	if v := os.Getenv(EnvBurst); v != "" {
		b, err := strconv.Atoi(v)
		if err != nil || b <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvBurst, v)
		}
		cfg.Burst = b
	}
	if v := os.Getenv(EnvPrecision); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 0 || p > 12 {
			return Config{}, fmt.Errorf("%s must be an integer from 0 to 12, got %q", EnvPrecision, v)
		}
		cfg.Precision = p
	}

	return cfg, nil
}
