package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilepaint/common"
)

// EbitenWindow reports the layout size last handed to the game by ebiten.
type EbitenWindow struct {
	width, height int
}

func NewEbitenWindow(width, height int) *EbitenWindow {
	return &EbitenWindow{width: width, height: height}
}

// Resize is called from the game's Layout.
func (w *EbitenWindow) Resize(width, height int) {
	w.width, w.height = width, height
}

func (w *EbitenWindow) Size() common.Vec2 {
	return common.V(float64(w.width), float64(w.height))
}

// HighDensity reports whether the current monitor scales its pixels.
func (w *EbitenWindow) HighDensity() bool {
	m := ebiten.Monitor()
	if m == nil {
		return false
	}
	return m.DeviceScaleFactor() > 1
}
