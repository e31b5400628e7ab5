package tilemap

import (
	"fmt"
	"slices"
)

// Empty marks a cell with no tile.
const Empty int32 = -1

// Grid is a square level of tile indices stored row-major.
type Grid struct {
	side  int
	cells []int32
}

func NewGrid(side int) (*Grid, error) {
	if side <= 0 {
		return nil, fmt.Errorf("tilemap: grid side %d must be positive", side)
	}
	g := &Grid{side: side, cells: make([]int32, side*side)}
	g.Clear()
	return g, nil
}

func (g *Grid) Side() int { return g.side }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.side && y < g.side
}

// At returns the cell at (x, y), or Empty when out of range.
func (g *Grid) At(x, y int) int32 {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.side+x]
}

// Set writes v at (x, y) and reports whether the cell exists.
func (g *Grid) Set(x, y int, v int32) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.side+x] = v
	return true
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// Cells exposes the backing slice. Writes go straight to the grid.
func (g *Grid) Cells() []int32 {
	return g.cells
}

// Painted counts the non-empty cells.
func (g *Grid) Painted() int {
	n := 0
	for _, c := range g.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same side and contents.
func (g *Grid) Equal(o *Grid) bool {
	return g.side == o.side && slices.Equal(g.cells, o.cells)
}
