package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilepaint/assets"
	"github.com/milk9111/tilepaint/config"
)

func main() {
	configPath := flag.String("config", "tilepaint.yaml", "YAML config file (missing file uses defaults)")
	assetsDir := flag.String("dir", ".", "directory relative resource paths are resolved against")
	levelPath := flag.String("level", "", "level file to edit, overrides level.path")
	tilesetPath := flag.String("tileset", "", "tileset image, overrides tileset.path")
	tileWidth := flag.String("tw", "", "tile width in pixels, overrides tileset.tile_width")
	tileHeight := flag.String("th", "", "tile height in pixels, overrides tileset.tile_height")
	scriptPath := flag.String("script", "", "tengo level script run with F5, overrides script.path")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	log.Println("Editor starting...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	override(&cfg.Level.Path, *levelPath)
	override(&cfg.Tileset.Path, *tilesetPath)
	override(&cfg.Tileset.TileWidth, *tileWidth)
	override(&cfg.Tileset.TileHeight, *tileHeight)
	override(&cfg.Script.Path, *scriptPath)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	app, err := NewApp(cfg, assets.NewLoader(*assetsDir))
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(app)
	app.Close()
	if err != nil {
		log.Fatal(err)
	}
}

func override(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}
