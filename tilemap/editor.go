package tilemap

import (
	"math"

	"github.com/milk9111/tilepaint/common"
	"github.com/milk9111/tilepaint/engine"
)

var missingTile = engine.RGB(1, 0, 1)

// Editor paints palette indices into the grid under the cursor.
type Editor struct {
	Grid     *Grid
	Camera   *Camera
	Picker   *Tilepicker
	TileSize float64
	// Blocker is the screen area owned by UI chrome; painting is suppressed
	// while the cursor is inside it.
	Blocker  common.Rect
	CanPlace bool
}

func NewEditor(grid *Grid, cam *Camera, picker *Tilepicker, tileSize float64) *Editor {
	return &Editor{Grid: grid, Camera: cam, Picker: picker, TileSize: tileSize, CanPlace: true}
}

// CellAt maps a screen position to a grid cell. The result may be out of
// range.
func (e *Editor) CellAt(cursor common.Vec2) (int, int) {
	return cursor.Add(e.Camera.Pos).Floor(e.TileSize)
}

// PlaceTiles paints the selected tile with the primary button or erases with
// the secondary one. It reports whether a cell was written.
func (e *Editor) PlaceTiles(s *engine.Snapshot) bool {
	if e.Blocker.Contains(s.Cursor) || !e.Picker.Show || !e.CanPlace {
		return false
	}
	x, y := e.CellAt(s.Cursor)
	if !e.Grid.InBounds(x, y) {
		return false
	}
	switch {
	case s.Button(engine.MousePrimary).Down():
		return e.Grid.Set(x, y, int32(e.Picker.Selected))
	case s.Button(engine.MouseSecondary).Down():
		return e.Grid.Set(x, y, Empty)
	}
	return false
}

// DrawTiles renders the cells visible in a view of the given size. Cells
// that reference no loaded tile are drawn magenta.
func (e *Editor) DrawTiles(r engine.Renderer, view common.Vec2) {
	ts := e.TileSize
	x0, y0 := e.Camera.Pos.Floor(ts)
	x1 := int(math.Ceil((e.Camera.Pos.X + view.X) / ts))
	y1 := int(math.Ceil((e.Camera.Pos.Y + view.Y) / ts))
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, e.Grid.Side()-1), min(y1, e.Grid.Side()-1)

	loaded := e.Picker.Show && e.Picker.Texture != nil
	size := common.V(ts, ts)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			idx := e.Grid.At(x, y)
			if idx == Empty {
				continue
			}
			pos := common.V(float64(x)*ts, float64(y)*ts).Sub(e.Camera.Pos)
			src, ok := e.Picker.Source(int(idx))
			if !loaded || !ok || int(idx) > e.Picker.MaxIndex {
				r.FillRect(pos, size, missingTile)
				continue
			}
			r.DrawTexture(e.Picker.Texture, src, pos, size, tileTint)
		}
	}
}
