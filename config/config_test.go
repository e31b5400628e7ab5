package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/tilepaint/levels"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Side != 512 || cfg.Camera.Speed != 200 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilepaint.yaml")
	data := `
grid:
  side: 64
level:
  path: levels/one.level
  short_read: fill
tileset:
  tile_width: "8"
script:
  timeout: 500ms
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Side != 64 || cfg.Grid.TileSize != 32 {
		t.Fatalf("grid = %+v", cfg.Grid)
	}
	if cfg.Level.Path != "levels/one.level" || cfg.Tileset.TileWidth != "8" || cfg.Tileset.TileHeight != "16" {
		t.Fatalf("paths = %+v %+v", cfg.Level, cfg.Tileset)
	}
	if cfg.Script.Timeout != 500*time.Millisecond {
		t.Fatalf("timeout = %v", cfg.Script.Timeout)
	}
	p, err := cfg.ShortReadPolicy()
	if err != nil || p != levels.ShortReadFill {
		t.Fatalf("policy = %v, %v", p, err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [1, 2"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero_side", func(c *Config) { c.Grid.Side = 0 }},
		{"huge_side", func(c *Config) { c.Grid.Side = MaxGridSide + 1 }},
		{"zero_tile", func(c *Config) { c.Grid.TileSize = 0 }},
		{"zero_window", func(c *Config) { c.Window.Width = 0 }},
		{"panel_too_wide", func(c *Config) { c.Panel.Width = 5000 }},
		{"negative_speed", func(c *Config) { c.Camera.Speed = -1 }},
		{"font", func(c *Config) { c.Font.Size = 0 }},
		{"policy", func(c *Config) { c.Level.ShortRead = "truncate" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}
