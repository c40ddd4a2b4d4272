package session

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/glulx-runtime/errors"
	"github.com/wippyai/glulx-runtime/rng"
)

// Config describes one VM session. The zero value plus an ImagePath is a
// working configuration.
type Config struct {
	// ImagePath is the program image to locate at session start.
	ImagePath string `toml:"image"`

	// HeapLimit caps the VM heap in bytes; zero means unbounded.
	HeapLimit uint64 `toml:"heap_limit"`

	// Seed, when nonzero, puts the session's generator in deterministic
	// mode from the first draw. Zero keeps the native source.
	Seed uint32 `toml:"seed"`

	// ClockFallback substitutes the deterministic-from-clock source for
	// native mode, for hosts without a usable entropy source.
	ClockFallback bool `toml:"clock_fallback"`

	// Source overrides the native random source (set programmatically,
	// not from a config file).
	Source rng.Source `toml:"-"`
}

// LoadConfig parses a session configuration from a TOML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "read config")
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse config")
	}
	return cfg, nil
}
