package main

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilepaint/assets"
	"github.com/milk9111/tilepaint/common"
	"github.com/milk9111/tilepaint/config"
	"github.com/milk9111/tilepaint/engine"
	"github.com/milk9111/tilepaint/scene"
	"github.com/milk9111/tilepaint/tilemap"
	"github.com/milk9111/tilepaint/ui"
)

const (
	fpsRefresh = 0.5
	fpsMargin  = 5
)

var fpsColor = engine.RGB(1, 1, 1)

// App is the ebiten.Game driving both scenes. It polls input once per frame
// and hands the rest of the frame to the active scene.
type App struct {
	poller   *engine.Poller
	renderer *engine.EbitenRenderer
	window   *engine.EbitenWindow
	scenes   *scene.Manager

	editor    *editorScene
	editorID  scene.ID
	previewID scene.ID
}

func NewApp(cfg config.Config, loader *assets.Loader) (*App, error) {
	policy, err := cfg.ShortReadPolicy()
	if err != nil {
		return nil, err
	}
	grid, err := tilemap.NewGrid(cfg.Grid.Side)
	if err != nil {
		return nil, err
	}

	window := engine.NewEbitenWindow(cfg.Window.Width, cfg.Window.Height)
	highDensity := window.HighDensity()
	px := cfg.Font.Size
	if highDensity {
		px = cfg.Font.RetinaSize
	}
	font, err := loader.LoadFont(cfg.Font.Path, px)
	if err != nil {
		common.Errorf("Font '%s' could not be loaded, using the default font: %v", cfg.Font.Path, err)
		if font, err = engine.DefaultFont(px); err != nil {
			return nil, err
		}
	}

	a := &App{
		poller:   engine.NewPoller(),
		renderer: engine.NewEbitenRenderer(),
		window:   window,
		scenes:   scene.NewManager(),
	}

	ctx := ui.NewContext(font, a.renderer, highDensity)
	picker := tilemap.NewTilepicker(common.Vec2{}, common.Vec2{})

	a.editor = newEditorScene(editorDeps{
		cfg:    cfg,
		policy: policy,
		poller: a.poller,
		window: window,
		loader: loader,
		ctx:    ctx,
		editor: tilemap.NewEditor(grid, tilemap.NewCamera(cfg.Camera.Speed), picker, cfg.Grid.TileSize),
	})
	preview := newPreviewScene(previewDeps{
		poller:    a.poller,
		window:    window,
		ctx:       ctx,
		view:      tilemap.NewEditor(grid, tilemap.NewCamera(cfg.Camera.Speed), picker, cfg.Grid.TileSize),
		levelPath: a.editor.LevelPath,
		back:      func() { a.switchTo(a.editorID) },
	})

	a.editorID = a.scenes.Register(a.editor)
	a.previewID = a.scenes.Register(preview)
	return a, nil
}

func (a *App) Update() error {
	s := a.poller.Poll()

	// Tab is a typed character while an input has focus.
	if !a.poller.TextInput() && s.KeyPressed(ebiten.KeyTab) {
		if a.scenes.IsActive(a.editorID) {
			a.switchTo(a.previewID)
		} else {
			a.switchTo(a.editorID)
		}
	}

	return a.scenes.Update(1 / float64(ebiten.TPS()))
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Begin(screen)
	a.scenes.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.window.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close releases the file watcher. It is called once the game loop ends.
func (a *App) Close() {
	a.editor.Close()
}

func (a *App) switchTo(id scene.ID) {
	if err := a.scenes.Switch(id); err != nil {
		common.Errorf("%v", err)
	}
}

// fpsCounter refreshes the displayed frame rate every fpsRefresh seconds.
type fpsCounter struct {
	timer float64
	text  string
}

func newFPSCounter() fpsCounter {
	// Start past the refresh interval so the first frame shows a value.
	return fpsCounter{timer: fpsRefresh}
}

func (f *fpsCounter) update(dt float64) {
	f.timer += dt
	if f.timer >= fpsRefresh {
		f.text = strconv.Itoa(int(ebiten.ActualFPS() + 0.5))
		f.timer = 0
	}
}

func (f *fpsCounter) draw(ctx *ui.Context) {
	ctx.Renderer.DrawText(ctx.Font, common.V(fpsMargin, fpsMargin), f.text, fpsColor, ctx.TextScale())
}
