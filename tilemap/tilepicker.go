package tilemap

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/milk9111/tilepaint/common"
	"github.com/milk9111/tilepaint/engine"
)

const pickerColumns = 3

var (
	ErrTileSize     = errors.New("tilemap: tile width and height must be positive")
	ErrEmptyTileset = errors.New("tilemap: tileset holds no whole tiles")

	pickerBackground = engine.RGB(0.3, 0.3, 0.3)
	selectionOutline = engine.RGB(1, 0.85, 0.2)
	tileTint         = engine.RGB(1, 1, 1)
)

// Tile is one palette entry. Pos is unscrolled screen space; Source is a
// normalised rectangle into the tileset texture.
type Tile struct {
	Pos    common.Vec2
	Source common.Rect
	Size   float64
	Index  int
}

// Tilepicker is the scrollable palette built from a tileset texture.
type Tilepicker struct {
	Pos  common.Vec2
	Size common.Vec2

	Texture    *engine.Texture
	TileWidth  int
	TileHeight int
	Tiles      []Tile

	Offset      float64
	MaxScroll   float64
	TotalHeight float64
	MaxIndex    int
	Selected    int

	Show       bool
	CursorOver bool
}

func NewTilepicker(pos, size common.Vec2) *Tilepicker {
	return &Tilepicker{Pos: pos, Size: size, MaxIndex: -1, Selected: -1}
}

// Reload loads path and slices it into widthText x heightText tiles. When
// the file cannot be loaded the current texture is kept and the picker is
// hidden.
func (p *Tilepicker) Reload(load engine.TextureLoader, path, widthText, heightText string) error {
	tex, err := load(path)
	if err != nil {
		p.Show = false
		return fmt.Errorf("tilemap: load tileset %s: %w", path, err)
	}
	if p.Texture != nil && p.Texture != tex {
		p.Texture.Release()
	}
	p.Texture = tex

	p.TileWidth = atoi(widthText)
	p.TileHeight = atoi(heightText)
	if p.TileWidth <= 0 || p.TileHeight <= 0 {
		p.Show = false
		return fmt.Errorf("%w: got %q x %q", ErrTileSize, widthText, heightText)
	}

	if err := p.rebuild(); err != nil {
		p.Show = false
		return err
	}
	p.Show = true
	return nil
}

// SetBounds moves or resizes the picker and lays the palette out again.
func (p *Tilepicker) SetBounds(pos, size common.Vec2) {
	p.Pos, p.Size = pos, size
	if p.Texture != nil && p.TileWidth > 0 && p.TileHeight > 0 {
		if err := p.rebuild(); err != nil {
			p.Show = false
		}
	}
}

func (p *Tilepicker) rebuild() error {
	cols := p.Texture.Width / p.TileWidth
	rows := p.Texture.Height / p.TileHeight
	count := cols * rows
	if count <= 0 {
		p.Tiles = p.Tiles[:0]
		p.MaxIndex = -1
		p.Selected = -1
		return fmt.Errorf("%w: %dx%d texture, %dx%d tiles", ErrEmptyTileset,
			p.Texture.Width, p.Texture.Height, p.TileWidth, p.TileHeight)
	}

	rs := p.Size.X / pickerColumns
	uw := float64(p.TileWidth) / float64(p.Texture.Width)
	uh := float64(p.TileHeight) / float64(p.Texture.Height)

	p.Tiles = p.Tiles[:0]
	for i := range count {
		p.Tiles = append(p.Tiles, Tile{
			Pos: common.V(
				p.Pos.X+float64(i%pickerColumns)*rs,
				p.Pos.Y+float64(i/pickerColumns)*rs,
			),
			Source: common.Rect{
				X:      float64(i%cols) * uw,
				Y:      float64(i/cols) * uh,
				Width:  uw,
				Height: uh,
			},
			Size:  rs,
			Index: i,
		})
	}

	p.MaxIndex = count - 1
	p.TotalHeight = math.Ceil(float64(count)/pickerColumns) * rs
	p.MaxScroll = p.TotalHeight - p.Size.Y
	p.clampOffset()
	if p.Selected > p.MaxIndex {
		p.Selected = -1
	}
	return nil
}

func (p *Tilepicker) clampOffset() {
	if p.MaxScroll <= 0 {
		p.Offset = 0
		return
	}
	p.Offset = common.Clamp(p.Offset, 0, p.MaxScroll)
}

func (p *Tilepicker) Bounds() common.Rect {
	return common.RectAt(p.Pos, p.Size)
}

// Update scrolls the palette under the cursor and selects the clicked tile.
func (p *Tilepicker) Update(s *engine.Snapshot) {
	p.CursorOver = p.Bounds().Contains(s.Cursor)
	if !p.CursorOver {
		return
	}
	p.Offset -= s.Scroll.Y
	p.clampOffset()

	if !p.Show || !s.Button(engine.MousePrimary).JustPressed {
		return
	}
	for _, t := range p.Tiles {
		if p.tileRect(t).Contains(s.Cursor) {
			p.Selected = t.Index
			return
		}
	}
}

// Source returns the normalised source rectangle of palette entry index.
func (p *Tilepicker) Source(index int) (common.Rect, bool) {
	if index < 0 || index >= len(p.Tiles) {
		return common.Rect{}, false
	}
	return p.Tiles[index].Source, true
}

func (p *Tilepicker) tileRect(t Tile) common.Rect {
	return common.Rect{X: t.Pos.X, Y: t.Pos.Y - p.Offset, Width: t.Size, Height: t.Size}
}

func (p *Tilepicker) Draw(r engine.Renderer) {
	bounds := p.Bounds()
	r.FillRect(p.Pos, p.Size, pickerBackground)
	if !p.Show || p.Texture == nil {
		return
	}

	r.SetScissor(bounds)
	r.EnableScissor(true)
	for _, t := range p.Tiles {
		tr := p.tileRect(t)
		if !tr.Intersects(bounds) {
			continue
		}
		r.DrawTexture(p.Texture, t.Source, tr.Pos(), tr.Size(), tileTint)
	}
	if p.Selected >= 0 && p.Selected < len(p.Tiles) {
		outline(r, p.tileRect(p.Tiles[p.Selected]), 2, selectionOutline)
	}
	r.EnableScissor(false)
}

func outline(r engine.Renderer, rect common.Rect, w float64, c color.Color) {
	r.FillRect(rect.Pos(), common.V(rect.Width, w), c)
	r.FillRect(common.V(rect.X, rect.Y+rect.Height-w), common.V(rect.Width, w), c)
	r.FillRect(rect.Pos(), common.V(w, rect.Height), c)
	r.FillRect(common.V(rect.X+rect.Width-w, rect.Y), common.V(w, rect.Height), c)
}

// atoi parses leading decimal digits the way C's atoi does: surrounding
// garbage is ignored and no digits yields 0.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > math.MaxInt32 {
			n = math.MaxInt32
		}
	}
	if neg {
		return -n
	}
	return n
}
