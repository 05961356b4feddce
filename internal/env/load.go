package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment overrides understood by the hosts.
const (
	ConfigPath    = "BOUNCE_CONFIG"
	Seed          = "BOUNCE_SEED"
	Integration   = "BOUNCE_INTEGRATION"
	TelemetryAddr = "BOUNCE_TELEMETRY_ADDR"
	Audio         = "BOUNCE_AUDIO"
)

// Load reads the given file (e.g. ".env") into the process environment. Variables that
// are already set win over the file. The file may be missing; that is not an error.
func Load(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// String returns the variable's value, or fallback when unset or blank.
func String(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Uint returns the variable parsed as an unsigned integer, or fallback when unset.
func Uint(key string, fallback uint64) (uint64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// Bool returns the variable parsed with strconv.ParseBool, or fallback when unset.
func Bool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
