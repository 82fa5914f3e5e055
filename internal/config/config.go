package config

import (
	"os"
	"strconv"
)

// Config holds all runner configuration.
type Config struct {
	InputDir      string // directory holding <day>.txt input files
	LogLevel      string // "debug", "info", "warn", "error"
	LogFormat     string // "text" or "json"
	SafeThreshold int    // day 6 safe-region distance threshold
}

// DefaultSafeThreshold is the puzzle's day 6 threshold.
const DefaultSafeThreshold = 10000

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		InputDir:      getenv("AOC_INPUT_DIR", "inputs"),
		LogLevel:      getenv("AOC_LOG_LEVEL", "info"),
		LogFormat:     getenv("AOC_LOG_FORMAT", "text"),
		SafeThreshold: getenvInt("AOC_SAFE_THRESHOLD", DefaultSafeThreshold),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
