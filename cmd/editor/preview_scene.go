package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilepaint/common"
	"github.com/milk9111/tilepaint/engine"
	"github.com/milk9111/tilepaint/tilemap"
	"github.com/milk9111/tilepaint/ui"
)

var previewClear = engine.RGB(0.12, 0.1, 0.22)

type previewDeps struct {
	poller    *engine.Poller
	window    engine.Window
	ctx       *ui.Context
	view      *tilemap.Editor
	levelPath func() string
	back      func()
}

// previewScene shows the level read-only. It shares the grid and palette
// with the editor but scrolls with its own camera.
type previewScene struct {
	previewDeps

	hud *previewHUD
	fps fpsCounter
}

func newPreviewScene(deps previewDeps) *previewScene {
	return &previewScene{
		previewDeps: deps,
		hud:         newPreviewHUD(deps.back),
		fps:         newFPSCounter(),
	}
}

func (p *previewScene) Update(dt float64) error {
	s := p.poller.Snapshot()
	if s.KeyPressed(ebiten.KeyEscape) {
		p.back()
		return nil
	}

	p.view.Camera.Update(dt, s)
	p.fps.update(dt)

	g := p.view.Grid
	p.hud.refresh(p.levelPath(), g.Painted(), g.Len())
	p.hud.ui.Update()
	return nil
}

func (p *previewScene) Draw(screen *ebiten.Image) {
	screen.Fill(previewClear)
	p.view.DrawTiles(p.ctx.Renderer, p.window.Size())
	p.fps.draw(p.ctx)
	p.hud.ui.Draw(screen)
}

func (p *previewScene) OnEnter() {
	common.Infof("Previewing level '%s'.", p.levelPath())
	p.poller.SetTextInput(false)
}

func (p *previewScene) OnExit() {}
