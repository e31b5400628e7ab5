package engine

import (
	"image/color"

	"github.com/milk9111/tilepaint/common"
)

// Renderer is the drawing surface the UI and the editor render into. Source
// rectangles are normalised to the texture size (0..1 on both axes, origin
// at the texture's top-left).
type Renderer interface {
	FillRect(pos, size common.Vec2, c color.Color)
	DrawTexture(tex *Texture, src common.Rect, pos, size common.Vec2, tint color.Color)
	DrawText(f *Font, pos common.Vec2, text string, c color.Color, scale float64)
	SetScissor(r common.Rect)
	EnableScissor(enabled bool)
}

// Window exposes the few window properties the editor reads.
type Window interface {
	Size() common.Vec2
	HighDensity() bool
}

// RGB builds an opaque colour from 0..1 float components.
func RGB(r, g, b float64) color.NRGBA {
	return color.NRGBA{R: unit(r), G: unit(g), B: unit(b), A: 0xff}
}

func unit(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
