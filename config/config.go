package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/milk9111/tilepaint/levels"
	"gopkg.in/yaml.v3"
)

// MaxGridSide bounds the level size: 4096² cells is 64 MiB on disk.
const MaxGridSide = 4096

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Grid    GridConfig    `yaml:"grid"`
	Camera  CameraConfig  `yaml:"camera"`
	Panel   PanelConfig   `yaml:"panel"`
	Level   LevelConfig   `yaml:"level"`
	Tileset TilesetConfig `yaml:"tileset"`
	Font    FontConfig    `yaml:"font"`
	Script  ScriptConfig  `yaml:"script"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type GridConfig struct {
	Side     int     `yaml:"side"`
	TileSize float64 `yaml:"tile_size"`
}

type CameraConfig struct {
	Speed float64 `yaml:"speed"`
}

type PanelConfig struct {
	Width float64 `yaml:"width"`
}

type LevelConfig struct {
	Path      string `yaml:"path"`
	ShortRead string `yaml:"short_read"`
}

// TilesetConfig keeps the tile size as text; it seeds the editor's text
// inputs and is parsed when the tileset is reloaded.
type TilesetConfig struct {
	Path       string `yaml:"path"`
	TileWidth  string `yaml:"tile_width"`
	TileHeight string `yaml:"tile_height"`
	Watch      bool   `yaml:"watch"`
}

type FontConfig struct {
	Path       string  `yaml:"path"`
	Size       float64 `yaml:"size"`
	RetinaSize float64 `yaml:"retina_size"`
}

type ScriptConfig struct {
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"`
}

func Default() Config {
	return Config{
		Window:  WindowConfig{Width: 1280, Height: 720, Title: "tilepaint"},
		Grid:    GridConfig{Side: 512, TileSize: 32},
		Camera:  CameraConfig{Speed: 200},
		Panel:   PanelConfig{Width: 250},
		Level:   LevelConfig{Path: "example.level", ShortRead: "reject"},
		Tileset: TilesetConfig{Path: "tileset.png", TileWidth: "16", TileHeight: "16", Watch: true},
		Font:    FontConfig{Size: 12, RetinaSize: 48},
		Script:  ScriptConfig{Timeout: 2 * time.Second},
	}
}

// Load reads a YAML config over the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

// ShortReadPolicy returns the parsed level.short_read setting.
func (c Config) ShortReadPolicy() (levels.ShortReadPolicy, error) {
	return levels.ParsePolicy(c.Level.ShortRead)
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Grid.Side <= 0 || c.Grid.Side > MaxGridSide:
		return fmt.Errorf("%w: grid side %d not in 1..%d", ErrInvalid, c.Grid.Side, MaxGridSide)
	case c.Grid.TileSize <= 0:
		return fmt.Errorf("%w: tile size %v", ErrInvalid, c.Grid.TileSize)
	case c.Panel.Width <= 0 || int(c.Panel.Width) >= c.Window.Width:
		return fmt.Errorf("%w: panel width %v", ErrInvalid, c.Panel.Width)
	case c.Camera.Speed < 0:
		return fmt.Errorf("%w: camera speed %v", ErrInvalid, c.Camera.Speed)
	case c.Font.Size <= 0 || c.Font.RetinaSize <= 0:
		return fmt.Errorf("%w: font size %v/%v", ErrInvalid, c.Font.Size, c.Font.RetinaSize)
	case c.Script.Timeout < 0:
		return fmt.Errorf("%w: script timeout %v", ErrInvalid, c.Script.Timeout)
	}
	if _, err := c.ShortReadPolicy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
