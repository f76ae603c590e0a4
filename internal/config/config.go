// Package config reads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

// Environment variables consulted by Load.
const (
	EnvLogLevel      = "EDGE_MCP_LOG_LEVEL"
	EnvWorkers       = "EDGE_MCP_WORKERS"
	EnvThresholdLow  = "EDGE_MCP_THRESHOLD_LOW"
	EnvThresholdHigh = "EDGE_MCP_THRESHOLD_HIGH"
)

// Config holds runtime settings shared by the binaries.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel slog.Level

	// Workers bounds the goroutines used per detector stage. 1 runs
	// sequentially.
	Workers int

	// Thresholds are the defaults used when a tool call omits them.
	Thresholds canny.Thresholds
}

// Default returns warn-level logging, one worker per CPU and thresholds
// 0.2/0.3.
func Default() Config {
	return Config{
		LogLevel:   slog.LevelWarn,
		Workers:    runtime.NumCPU(),
		Thresholds: canny.Thresholds{Low: 0.2, High: 0.3},
	}
}

// Load returns Default overridden by any variables set in the environment.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		if n < 1 {
			return Config{}, fmt.Errorf("%s: must be at least 1, got %d", EnvWorkers, n)
		}
		cfg.Workers = n
	}

	var err error
	if cfg.Thresholds.Low, err = lookupFloat(lookup, EnvThresholdLow, cfg.Thresholds.Low); err != nil {
		return Config{}, err
	}
	if cfg.Thresholds.High, err = lookupFloat(lookup, EnvThresholdHigh, cfg.Thresholds.High); err != nil {
		return Config{}, err
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return Config{}, fmt.Errorf("default thresholds: %w", err)
	}

	return cfg, nil
}

func lookupFloat(lookup func(string) (string, bool), key string, def float32) (float32, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return float32(f), nil
}

// ParseLevel maps debug, info, warn (or warning) and error to a slog level.
// Matching is case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
