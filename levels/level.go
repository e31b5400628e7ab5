package levels

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/tilepaint/tilemap"
)

// CellSize is the on-disk size of one cell: a little-endian int32.
const CellSize = 4

var (
	ErrEmptyPath    = errors.New("levels: empty path")
	ErrSizeMismatch = errors.New("levels: file size does not match grid")
)

// ShortReadPolicy decides what Load does with a file that does not hold
// exactly one value per grid cell.
type ShortReadPolicy int

const (
	// ShortReadReject refuses any file whose size is not Len()*CellSize and
	// leaves the grid untouched.
	ShortReadReject ShortReadPolicy = iota
	// ShortReadKeep reads what is there; trailing cells keep their values
	// and extra bytes are ignored.
	ShortReadKeep
	// ShortReadFill reads what is there and empties the trailing cells.
	ShortReadFill
)

func (p ShortReadPolicy) String() string {
	switch p {
	case ShortReadReject:
		return "reject"
	case ShortReadKeep:
		return "keep"
	case ShortReadFill:
		return "fill"
	default:
		return fmt.Sprintf("ShortReadPolicy(%d)", int(p))
	}
}

func ParsePolicy(s string) (ShortReadPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return ShortReadReject, nil
	case "keep":
		return ShortReadKeep, nil
	case "fill":
		return ShortReadFill, nil
	default:
		return ShortReadReject, fmt.Errorf("levels: unknown short read policy %q", s)
	}
}

// Save writes every cell of grid to path, row-major, with no header. It
// returns the number of bytes written.
func Save(path string, grid *tilemap.Grid) (int, error) {
	if path == "" {
		return 0, ErrEmptyPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("levels: save %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("levels: save %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, grid.Cells()); err != nil {
		return 0, fmt.Errorf("levels: save %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("levels: save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("levels: save %s: %w", path, err)
	}
	return grid.Len() * CellSize, nil
}

// Load reads path into grid and returns the number of cells read.
func Load(path string, grid *tilemap.Grid, policy ShortReadPolicy) (int, error) {
	if path == "" {
		return 0, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("levels: load %s: %w", path, err)
	}
	defer f.Close()

	want := int64(grid.Len()) * CellSize
	if policy == ShortReadReject {
		info, err := f.Stat()
		if err != nil {
			return 0, fmt.Errorf("levels: load %s: %w", path, err)
		}
		if info.Size() != want {
			return 0, fmt.Errorf("%w: %s is %d bytes, want %d", ErrSizeMismatch, path, info.Size(), want)
		}
	}

	buf, err := io.ReadAll(io.LimitReader(bufio.NewReader(f), want))
	if err != nil {
		return 0, fmt.Errorf("levels: load %s: %w", path, err)
	}

	cells := grid.Cells()
	n := len(buf) / CellSize
	for i := range n {
		cells[i] = int32(binary.LittleEndian.Uint32(buf[i*CellSize:]))
	}
	if policy == ShortReadFill {
		for i := n; i < len(cells); i++ {
			cells[i] = tilemap.Empty
		}
	}
	return n, nil
}

// Clear empties every cell.
func Clear(grid *tilemap.Grid) {
	grid.Clear()
}
