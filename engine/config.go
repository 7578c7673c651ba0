package engine

import (
	"os"
	"strconv"
	"time"
)

// Config controls engine construction
// Zero tuning overrides fall back to the parameter package defaults
type Config struct {
	// Seed drives the xorshift RNG used for per-dimension constants, the
	// random connection extras, and the key fan-out table. Zero means
	// "derive from wall clock" (per-run variety); tests pass a fixed seed
	Seed uint64

	// RandomConnections overrides the number of weak random edges:
	// 0 = package default, -1 = none, >0 = exact count
	RandomConnections int
}

// DefaultConfig returns a config with per-run seeding and default graph size
func DefaultConfig() Config {
	return Config{
		Seed: uint64(time.Now().UnixNano()),
	}
}

// LoadConfig builds a config from defaults plus FLUXFIELD_* environment overrides
func LoadConfig() Config {
	cfg := DefaultConfig()

	if seed := os.Getenv("FLUXFIELD_SEED"); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	if conns := os.Getenv("FLUXFIELD_RANDOM_CONNECTIONS"); conns != "" {
		if val, err := strconv.Atoi(conns); err == nil && val >= -1 {
			cfg.RandomConnections = val
		}
	}

	return cfg
}

// randomConnectionCount resolves the zero-default against the package constant
func (c Config) randomConnectionCount(fallback int) int {
	if c.RandomConnections < 0 {
		return 0
	}
	if c.RandomConnections == 0 {
		return fallback
	}
	return c.RandomConnections
}
