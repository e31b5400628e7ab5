package engine

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tilepaint/common"
)

// EbitenRenderer draws into the screen image handed to Begin.
type EbitenRenderer struct {
	target   *ebiten.Image
	scissor  common.Rect
	clipping bool
}

func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{}
}

// Begin starts a frame on screen. Clipping from the previous frame is reset.
func (r *EbitenRenderer) Begin(screen *ebiten.Image) {
	r.target = screen
	r.clipping = false
}

func (r *EbitenRenderer) FillRect(pos, size common.Vec2, c color.Color) {
	dst := r.dst()
	if dst == nil || size.X <= 0 || size.Y <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y), c, false)
}

func (r *EbitenRenderer) DrawTexture(tex *Texture, src common.Rect, pos, size common.Vec2, tint color.Color) {
	dst := r.dst()
	if dst == nil || tex == nil || tex.Image == nil {
		return
	}
	px := tex.PixelRect(src)
	if px.Empty() {
		return
	}
	sub := tex.Image.SubImage(px).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.X/float64(px.Dx()), size.Y/float64(px.Dy()))
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(tint)
	dst.DrawImage(sub, op)
}

// DrawText places the top of the tallest glyph at pos.Y.
func (r *EbitenRenderer) DrawText(f *Font, pos common.Vec2, s string, c color.Color, scale float64) {
	dst := r.dst()
	if dst == nil || f == nil || s == "" {
		return
	}
	baseline := pos.Y + f.TextSize(s, scale).Y

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, baseline-f.Ascent()*scale)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, f.Face(), op)
}

func (r *EbitenRenderer) SetScissor(rect common.Rect) {
	r.scissor = rect
}

func (r *EbitenRenderer) EnableScissor(enabled bool) {
	r.clipping = enabled
}

func (r *EbitenRenderer) dst() *ebiten.Image {
	if r.target == nil || !r.clipping {
		return r.target
	}
	clip := image.Rect(
		int(math.Floor(r.scissor.X)),
		int(math.Floor(r.scissor.Y)),
		int(math.Ceil(r.scissor.X+r.scissor.Width)),
		int(math.Ceil(r.scissor.Y+r.scissor.Height)),
	)
	return r.target.SubImage(clip).(*ebiten.Image)
}
