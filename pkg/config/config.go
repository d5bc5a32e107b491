// Package config loads the optional frogleap TOML configuration file.
//
// A missing file at the default location is not an error: [Load] returns
// [Default] instead. Command-line flags override whatever is loaded here.
//
//	[log]
//	level = "debug"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[render]
//	detailed = true
//
//	[serve]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/elitelau/frog-leap-problem/pkg/cache"
	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
)

const (
	appName  = "frogleap"
	fileName = "config.toml"
)

// Levels lists the accepted log levels.
var Levels = []string{"debug", "info", "warn", "error"}

// Config is the decoded configuration file.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Cache  CacheConfig  `toml:"cache"`
	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
}

// LogConfig is the [log] section.
type LogConfig struct {
	Level string `toml:"level"`
}

// CacheConfig is the [cache] section. Dir and RedisAddr only apply to their
// backend; TTL of zero keeps entries forever.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
}

// RenderConfig is the [render] section.
type RenderConfig struct {
	// Detailed adds the kind pattern and depth to every node label.
	Detailed bool `toml:"detailed"`
}

// ServeConfig is the [serve] section.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// Duration decodes TOML strings such as "36h" with time.ParseDuration.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats d with time.Duration.String.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Log:   LogConfig{Level: "info"},
		Cache: CacheConfig{Backend: cache.BackendFile, TTL: Duration{7 * 24 * time.Hour}},
		Serve: ServeConfig{Addr: "localhost:8080"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/frogleap/config.toml, falling back to
// ~/.config/frogleap/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path over the defaults. An empty path means
// DefaultPath, which may be absent; an explicit path must exist. Unknown
// keys are rejected so that typos do not pass silently.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, apperr.New(apperr.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes names to lower case and rejects unknown values.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if !slices.Contains(Levels, c.Log.Level) {
		return apperr.New(apperr.ErrCodeInvalidConfig,
			"log.level %q (want one of %s)", c.Log.Level, strings.Join(Levels, ", "))
	}

	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	if !slices.Contains(cache.Backends, c.Cache.Backend) {
		return apperr.New(apperr.ErrCodeInvalidConfig,
			"cache.backend %q (want one of %s)", c.Cache.Backend, strings.Join(cache.Backends, ", "))
	}
	if c.Cache.Backend == cache.BackendRedis && c.Cache.RedisAddr == "" {
		return apperr.New(apperr.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
	}
	if c.Cache.TTL.Duration < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}

	if c.Serve.Addr == "" {
		return apperr.New(apperr.ErrCodeInvalidConfig, "serve.addr must not be empty")
	}
	return nil
}
