package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "DEBUG"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
ttl = "36h"

[render]
detailed = true

[serve]
addr = ":9090"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 36*time.Hour {
		t.Errorf("Cache.TTL = %v, want 36h", cfg.Cache.TTL)
	}
	if !cfg.Render.Detailed {
		t.Error("Render.Detailed should be true")
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("Serve.Addr = %q", cfg.Serve.Addr)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[render]\ndetailed = true\n"))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.Log.Level != def.Log.Level || cfg.Cache.TTL != def.Cache.TTL || cfg.Serve.Addr != def.Serve.Addr {
		t.Errorf("unset sections should keep defaults, got %+v", cfg)
	}
}

func TestLoadMissingDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad toml", "[log\nlevel ="},
		{"unknown key", "[log]\ncolour = true\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n"},
		{"redis without addr", "[cache]\nbackend = \"redis\"\n"},
		{"bad ttl", "[cache]\nttl = \"soon\"\n"},
		{"negative ttl", "[cache]\nttl = \"-1h\"\n"},
		{"empty addr", "[serve]\naddr = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !apperr.Is(err, apperr.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want %s", err, apperr.ErrCodeInvalidConfig)
			}
		})
	}

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if !apperr.Is(err, apperr.ErrCodeInvalidConfig) {
			t.Errorf("Load() error = %v, want %s", err, apperr.ErrCodeInvalidConfig)
		}
	})
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "frogleap", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, _ = DefaultPath()
	if want := filepath.Join(home, ".config", "frogleap", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
