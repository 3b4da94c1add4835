// Package config provides configuration for the macrokey tool.
//
// Configuration is layered: built-in defaults, then an optional TOML file,
// then MACROKEY_-prefixed environment variables. The settings here
// configure the tool itself; the loader's input surface stays CSV-only.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "MACROKEY_"

// Config holds the tool settings.
type Config struct {
	// MacroDir is scanned for *.csv files when no paths are given.
	MacroDir string `toml:"macro_dir"`

	// Watch keeps the tool running and reloads files when they change.
	Watch bool `toml:"watch"`

	// SnapshotPath, when set, receives a JSON snapshot of the session
	// after loading.
	SnapshotPath string `toml:"snapshot"`

	// MaxDiagnostics caps the diagnostics recorded per load.
	// 0 means unlimited.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{}
}

// Load reads configuration from a TOML file, then applies environment
// overrides. A missing file is not an error; an empty path skips the file
// layer entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err != nil && os.IsNotExist(err):
			// Fall through to env overrides.
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays MACROKEY_-prefixed environment variables.
// Malformed boolean or integer values are ignored rather than fatal.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "MACRO_DIR"); ok {
		c.MacroDir = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "WATCH"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Watch = b
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SNAPSHOT"); ok {
		c.SnapshotPath = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "MAX_DIAGNOSTICS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxDiagnostics = n
		}
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.MaxDiagnostics < 0 {
		return fmt.Errorf("max_diagnostics must not be negative, got %d", c.MaxDiagnostics)
	}
	return nil
}
