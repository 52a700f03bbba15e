// Package config reads runtime settings from the environment, after loading
// an optional .env file from the working directory.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAddr       = "JAVAPLAY_ADDR"
	EnvRunTimeout = "JAVAPLAY_RUN_TIMEOUT"
	EnvCacheSize  = "JAVAPLAY_CACHE_SIZE"
	EnvLogLevel   = "JAVAPLAY_LOG_LEVEL"
)

type Config struct {
	// Addr is the listen address of the web playground.
	Addr string
	// RunTimeout bounds each program run. Zero means no limit.
	RunTimeout time.Duration
	// CacheSize is the number of translations kept in memory.
	CacheSize int
	// LogLevel is the commonlog verbosity, 0 (none) to 6 (debug).
	LogLevel int
}

func Default() *Config {
	return &Config{
		Addr:      ":8080",
		CacheSize: 256,
		LogLevel:  1,
	}
}

// Load returns the defaults overridden by any JAVAPLAY_* variables. A missing
// .env file is not an error; a malformed value is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if addr := strings.TrimSpace(os.Getenv(EnvAddr)); addr != "" {
		if !strings.Contains(addr, ":") {
			addr = ":" + addr
		}
		cfg.Addr = addr
	}

	if raw := strings.TrimSpace(os.Getenv(EnvRunTimeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvRunTimeout, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("%s: negative duration %s", EnvRunTimeout, raw)
		}
		cfg.RunTimeout = d
	}

	n, err := intVar(EnvCacheSize, cfg.CacheSize, 1, 1<<20)
	if err != nil {
		return nil, err
	}
	cfg.CacheSize = n

	n, err = intVar(EnvLogLevel, cfg.LogLevel, 0, 6)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = n

	return cfg, nil
}

func intVar(name string, def, min, max int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s: %d is outside %d..%d", name, v, min, max)
	}
	return v, nil
}
