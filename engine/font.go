package engine

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tilepaint/common"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph holds the metrics of one rasterised character, in pixels at scale 1.
type Glyph struct {
	Size    common.Vec2 // bitmap width and height
	Bearing common.Vec2 // offset from the pen position to the bitmap's left/top edge
	Advance float64
}

// Font caches glyph metrics for ASCII 0-127. Runes outside that range are
// measured on demand.
type Font struct {
	face   font.Face
	glyphs [128]Glyph
	ascent float64
	xface  *text.GoXFace
}

func NewFont(face font.Face) *Font {
	f := &Font{face: face, ascent: fixedToFloat(face.Metrics().Ascent)}
	for r := rune(0); r < 128; r++ {
		f.glyphs[r] = measureGlyph(face, r)
	}
	return f
}

// DefaultFont rasterises the embedded Go Regular typeface at px pixels.
func DefaultFont(px float64) (*Font, error) {
	return parseFont(goregular.TTF, px, "goregular")
}

// LoadFont rasterises a TTF/OTF file at px pixels.
func LoadFont(path string, px float64) (*Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: read %s: %w", path, err)
	}
	return parseFont(b, px, path)
}

func parseFont(data []byte, px float64, name string) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse %s: %w", name, err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: face %s: %w", name, err)
	}
	return NewFont(face), nil
}

func (f *Font) Glyph(r rune) Glyph {
	if r >= 0 && r < 128 {
		return f.glyphs[r]
	}
	return measureGlyph(f.face, r)
}

// TextSize returns the extent of s at the given scale. Every glyph but the
// last contributes its advance; the last contributes its bitmap width plus
// bearing. The height is the tallest bearing.
func (f *Font) TextSize(s string, scale float64) common.Vec2 {
	var size common.Vec2
	runes := []rune(s)
	for i, r := range runes {
		g := f.Glyph(r)
		if h := g.Bearing.Y * scale; h >= size.Y {
			size.Y = h
		}
		if i == len(runes)-1 {
			size.X += (g.Size.X + g.Bearing.X) * scale
		} else {
			size.X += g.Advance * scale
		}
	}
	return size
}

func (f *Font) Ascent() float64 {
	return f.ascent
}

// Face returns the ebiten text face for drawing.
func (f *Font) Face() text.Face {
	if f.xface == nil {
		f.xface = text.NewGoXFace(f.face)
	}
	return f.xface
}

func measureGlyph(face font.Face, r rune) Glyph {
	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return Glyph{}
	}
	return Glyph{
		Size: common.V(
			fixedToFloat(bounds.Max.X-bounds.Min.X),
			fixedToFloat(bounds.Max.Y-bounds.Min.Y),
		),
		Bearing: common.V(fixedToFloat(bounds.Min.X), fixedToFloat(-bounds.Min.Y)),
		Advance: fixedToFloat(advance),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
