package main

import (
	"context"
	"errors"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilepaint/assets"
	"github.com/milk9111/tilepaint/common"
	"github.com/milk9111/tilepaint/config"
	"github.com/milk9111/tilepaint/engine"
	"github.com/milk9111/tilepaint/levels"
	"github.com/milk9111/tilepaint/script"
	"github.com/milk9111/tilepaint/tilemap"
	"github.com/milk9111/tilepaint/ui"
)

const (
	exitPanelWidth  = 182.5
	exitPanelHeight = 64

	// Space left below the tile picker.
	pickerBottom = 20
)

var editorClear = engine.RGB(0.06, 0.05, 0.11)

type editorDeps struct {
	cfg    config.Config
	policy levels.ShortReadPolicy
	poller *engine.Poller
	window engine.Window
	loader *assets.Loader
	ctx    *ui.Context
	editor *tilemap.Editor
}

// editorScene paints the level. The settings panel sits on the right edge
// with the tile picker below its last widget.
type editorScene struct {
	editorDeps

	tree      *ui.Tree
	panel     ui.NodeID
	exitPanel ui.NodeID

	levelPath   ui.NodeID
	tilesetPath ui.NodeID
	tileWidth   ui.NodeID
	tileHeight  ui.NodeID

	showExit bool
	quit     bool
	size     common.Vec2

	watcher     *assets.Watcher
	watchedPath string

	fps fpsCounter
}

func newEditorScene(deps editorDeps) *editorScene {
	e := &editorScene{
		editorDeps: deps,
		tree:       ui.NewTree(),
		fps:        newFPSCounter(),
	}
	e.build()
	e.layout(e.window.Size())

	if fileExists(e.loader.Resolve(e.cfg.Tileset.Path)) {
		e.reloadTileset()
	}
	if fileExists(e.loader.Resolve(e.cfg.Level.Path)) {
		e.loadLevel()
	}
	return e
}

func (e *editorScene) build() {
	t, ctx := e.tree, e.ctx
	pw := e.cfg.Panel.Width
	size := e.window.Size()
	fieldWidth := pw - 2*ui.PanelPadding

	e.panel = ui.NewPanel(t, ctx, "Settings", common.V(size.X-pw, 0), common.V(pw, size.Y))

	e.addHeading("Level")
	e.addLabel("Filepath:")
	e.levelPath = e.addInput("example.level", e.cfg.Level.Path, fieldWidth)
	e.addButton("Save", e.saveLevel)
	e.addButton("Load", e.loadLevel)
	e.addButton("Clear", e.clearLevel)

	e.addHeading("Tileset")
	e.addLabel("Filepath:")
	e.tilesetPath = e.addInput("tileset.png", e.cfg.Tileset.Path, fieldWidth)
	e.addLabel("Tile width:")
	e.tileWidth = e.addInput("Width", e.cfg.Tileset.TileWidth, 0)
	e.addLabel("Tile height:")
	e.tileHeight = e.addInput("Height", e.cfg.Tileset.TileHeight, 0)
	e.addButton("Reload", e.reloadTileset)

	exitSize := common.V(exitPanelWidth, exitPanelHeight)
	e.exitPanel = ui.NewPanel(t, ctx, "Exit the app?", size.Sub(exitSize).Scale(0.5), exitSize)
	exit := ui.NewButton(t, ctx, "Exit", common.Vec2{}, func() { e.quit = true })
	ui.AddNode(t, e.exitPanel, exit)
	cancel := ui.NewButton(t, ctx, "Cancel", common.Vec2{}, e.closeExit)
	ui.AddNode(t, e.exitPanel, cancel)
	en := t.Node(exit)
	t.SetPosition(cancel, common.V(en.RelPos.X+en.Size.X+ui.PanelMargin, en.RelPos.Y))
}

// addHeading stacks a label and centres it horizontally in the panel.
func (e *editorScene) addHeading(text string) {
	id := e.addLabel(text)
	y := e.tree.Node(id).RelPos.Y
	ui.AlignToParent(e.tree, id)
	e.tree.SetPosition(id, common.V(e.tree.Node(id).RelPos.X, y))
}

func (e *editorScene) addLabel(text string) ui.NodeID {
	id := ui.NewLabel(e.tree, e.ctx, text, common.Vec2{})
	ui.AddNode(e.tree, e.panel, id)
	return id
}

func (e *editorScene) addInput(placeholder, text string, width float64) ui.NodeID {
	id := ui.NewInput(e.tree, e.ctx, placeholder, common.Vec2{})
	if width > 0 {
		e.tree.Node(id).Size.X = width
	}
	e.tree.Input(id).SetText(text)
	ui.AddNode(e.tree, e.panel, id)
	return id
}

func (e *editorScene) addButton(text string, onClick func()) {
	ui.AddNode(e.tree, e.panel, ui.NewButton(e.tree, e.ctx, text, common.Vec2{}, onClick))
}

// layout pins the settings panel to the right edge, centres the exit panel
// and fits the tile picker into the space under the panel's widgets.
func (e *editorScene) layout(size common.Vec2) {
	e.size = size
	pw := e.cfg.Panel.Width

	e.tree.Node(e.panel).Size.Y = size.Y
	e.tree.SetPosition(e.panel, common.V(size.X-pw, 0))
	exitSize := e.tree.Node(e.exitPanel).Size
	e.tree.SetPosition(e.exitPanel, size.Sub(exitSize).Scale(0.5))

	offset := e.tree.Panel(e.panel).ElementOffset()
	top := offset.Y + ui.PanelMargin
	e.editor.Picker.SetBounds(
		common.V(size.X-pw+ui.PanelPadding, top),
		common.V(pw-2*ui.PanelPadding, math.Max(size.Y-top-pickerBottom, 0)),
	)
	e.editor.Blocker = e.tree.Rect(e.panel)
}

// LevelPath is the level file named in the settings panel.
func (e *editorScene) LevelPath() string {
	return e.tree.Input(e.levelPath).Text()
}

func (e *editorScene) Update(dt float64) error {
	if size := e.window.Size(); size != e.size {
		e.layout(size)
	}

	s := e.poller.Snapshot()
	e.ctx.BeginFrame(s)

	if s.KeyPressed(ebiten.KeyEscape) {
		if e.showExit {
			e.closeExit()
		} else {
			e.showExit = true
			e.editor.CanPlace = false
		}
	}
	if s.KeyPressed(ebiten.KeyF5) {
		e.runScript()
	}
	e.drainWatcher()

	e.editor.Picker.Update(s)
	// WASD are typed characters while an input has focus.
	if !e.poller.TextInput() {
		e.editor.Camera.Update(dt, s)
	}
	e.editor.PlaceTiles(s)

	e.tree.Update(e.ctx, e.panel)
	if e.showExit {
		e.tree.Update(e.ctx, e.exitPanel)
	}
	e.poller.SetTextInput(e.ctx.TextInputMode())

	e.fps.update(dt)
	if e.quit {
		return ebiten.Termination
	}
	return nil
}

func (e *editorScene) Draw(screen *ebiten.Image) {
	screen.Fill(editorClear)
	e.editor.DrawTiles(e.ctx.Renderer, e.size)
	e.tree.Draw(e.ctx, e.panel)
	e.editor.Picker.Draw(e.ctx.Renderer)
	if e.showExit {
		e.tree.Draw(e.ctx, e.exitPanel)
	}
	e.fps.draw(e.ctx)
}

func (e *editorScene) OnEnter() {
	common.Infof("Entering the editor.")
}

func (e *editorScene) OnExit() {
	e.poller.SetTextInput(false)
}

// Close stops watching the tileset.
func (e *editorScene) Close() {
	if e.watcher == nil {
		return
	}
	if err := e.watcher.Close(); err != nil {
		common.Errorf("Tileset watcher could not be closed: %v", err)
	}
	e.watcher = nil
}

func (e *editorScene) closeExit() {
	e.showExit = false
	e.editor.CanPlace = true
}

func (e *editorScene) saveLevel() {
	path := e.LevelPath()
	common.Infof("Saving level to '%s'.", path)
	n, err := levels.Save(e.loader.Resolve(path), e.editor.Grid)
	if errors.Is(err, levels.ErrEmptyPath) {
		common.Errorf("Filename can't be empty.")
		return
	}
	if err != nil {
		common.Errorf("Level could not be saved: %v", err)
		return
	}
	common.Infof("Level has been saved, written %.2f MB of memory.", megabytes(n))
}

func (e *editorScene) loadLevel() {
	path := e.LevelPath()
	common.Infof("Loading level from '%s'.", path)
	n, err := levels.Load(e.loader.Resolve(path), e.editor.Grid, e.policy)
	switch {
	case errors.Is(err, levels.ErrEmptyPath):
		common.Errorf("Filename can't be empty.")
		return
	case errors.Is(err, os.ErrNotExist):
		common.Errorf("File '%s' could not be opened.", path)
		return
	case err != nil:
		common.Errorf("Level could not be loaded: %v", err)
		return
	}
	common.Infof("Level has been loaded, read %.2f MB of memory.", megabytes(n*levels.CellSize))
}

func (e *editorScene) clearLevel() {
	common.Infof("Clearing the level.")
	levels.Clear(e.editor.Grid)
}

func (e *editorScene) reloadTileset() {
	path := e.tree.Input(e.tilesetPath).Text()
	err := e.editor.Picker.Reload(
		e.loader.LoadTexture,
		path,
		e.tree.Input(e.tileWidth).Text(),
		e.tree.Input(e.tileHeight).Text(),
	)
	switch {
	case errors.Is(err, tilemap.ErrTileSize):
		common.Errorf("Tile width and/or height could not be read.")
	case errors.Is(err, tilemap.ErrEmptyTileset):
		common.Errorf("Tileset '%s' is smaller than one tile: %v", path, err)
	case err != nil:
		common.Errorf("File could not be located to load tileset: %v", err)
	default:
		common.Infof("Tileset '%s' loaded with %d tiles.", path, len(e.editor.Picker.Tiles))
	}
	e.watchTileset(e.loader.Resolve(path))
}

// watchTileset points the hot-reload watcher at path, replacing the previous
// one when the tileset file changed.
func (e *editorScene) watchTileset(path string) {
	if !e.cfg.Tileset.Watch || path == "" || path == e.watchedPath {
		return
	}
	e.Close()
	w, err := assets.NewWatcher(path)
	if err != nil {
		common.Errorf("Tileset '%s' will not be reloaded on change: %v", path, err)
		e.watchedPath = ""
		return
	}
	e.watcher = w
	e.watchedPath = path
}

func (e *editorScene) drainWatcher() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-e.watcher.Events:
			if !ok {
				e.watcher, e.watchedPath = nil, ""
				return
			}
			common.Infof("Tileset '%s' changed on disk, reloading.", name)
			e.reloadTileset()
			return
		case err, ok := <-e.watcher.Errors:
			if !ok {
				e.watcher, e.watchedPath = nil, ""
				return
			}
			common.Errorf("Tileset watcher: %v", err)
		default:
			return
		}
	}
}

func (e *editorScene) runScript() {
	path := e.cfg.Script.Path
	if path == "" {
		common.Errorf("No level script configured.")
		return
	}

	ctx := context.Background()
	if e.cfg.Script.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Script.Timeout)
		defer cancel()
	}

	common.Infof("Running level script '%s'.", path)
	if err := script.RunFile(ctx, e.loader.Resolve(path), e.editor.Grid); err != nil {
		common.Errorf("Level script failed: %v", err)
		return
	}
	common.Infof("Level script finished, %d cells painted.", e.editor.Grid.Painted())
}

func megabytes(n int) float64 {
	return float64(n) / (1 << 20)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
