// Package config loads the optional repopulse configuration file.
//
// The file lives at ~/.config/repopulse/config.toml (or under
// $XDG_CONFIG_HOME) and supplies defaults that command-line flags override:
//
//	branch = "main"
//	cache_dir = "/tmp/repopulse-cache"
//	cache_ttl = "24h"
//	http_timeout = "10s"
//
// A missing file is not an error; defaults apply.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/repopulse/repopulse/pkg/errors"
)

// appName is used for the config and cache directory names.
const appName = "repopulse"

// Defaults applied when the config file is absent or partial.
const (
	DefaultBranch      = "master"
	DefaultCacheTTL    = 24 * time.Hour
	DefaultHTTPTimeout = 10 * time.Second
)

// Config holds user-level defaults for the CLI.
type Config struct {
	Branch      string   `toml:"branch"`       // default analysis branch
	CacheDir    string   `toml:"cache_dir"`    // HTTP response cache directory
	CacheTTL    duration `toml:"cache_ttl"`    // cache entry lifetime
	HTTPTimeout duration `toml:"http_timeout"` // per-request timeout
}

// duration wraps time.Duration for TOML decoding of strings like "24h".
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML.
func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Branch:      DefaultBranch,
		CacheTTL:    duration{DefaultCacheTTL},
		HTTPTimeout: duration{DefaultHTTPTimeout},
	}
}

// Load reads the config file at path. A missing file yields the defaults;
// a malformed file yields an INVALID_CONFIG error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if cfg.Branch == "" {
		cfg.Branch = DefaultBranch
	}
	if cfg.CacheTTL.Duration == 0 {
		cfg.CacheTTL = duration{DefaultCacheTTL}
	}
	if cfg.HTTPTimeout.Duration == 0 {
		cfg.HTTPTimeout = duration{DefaultHTTPTimeout}
	}
	return cfg, nil
}

// LoadDefault loads the config from the standard location.
func LoadDefault() (*Config, error) {
	path, err := Path()
	if err != nil {
		// No resolvable home directory; run with defaults.
		return Default(), nil
	}
	return Load(path)
}

// Path returns the standard config file location, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
