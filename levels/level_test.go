package levels

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/tilepaint/tilemap"
)

func newGrid(t *testing.T, side int) *tilemap.Grid {
	t.Helper()
	g, err := tilemap.NewGrid(side)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestSaveClearLoadRoundTrip(t *testing.T) {
	g := newGrid(t, 8)
	g.Set(0, 0, 3)
	g.Set(7, 7, 12)
	g.Set(3, 5, 0)
	want := append([]int32(nil), g.Cells()...)

	path := filepath.Join(t.TempDir(), "nested", "dir", "a.level")
	n, err := Save(path, g)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n != 8*8*4 {
		t.Fatalf("wrote %d bytes, want %d", n, 8*8*4)
	}

	Clear(g)
	if g.Painted() != 0 {
		t.Fatalf("Clear left painted cells")
	}

	read, err := Load(path, g, ShortReadReject)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if read != 64 {
		t.Fatalf("read %d cells, want 64", read)
	}
	for i, v := range g.Cells() {
		if v != want[i] {
			t.Fatalf("cell %d = %d, want %d", i, v, want[i])
		}
	}
}

func TestSaveFormat(t *testing.T) {
	g := newGrid(t, 2)
	g.Set(1, 0, 258)
	path := filepath.Join(t.TempDir(), "b.level")
	if _, err := Save(path, g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("file is %d bytes", len(b))
	}
	if got := int32(binary.LittleEndian.Uint32(b[4:])); got != 258 {
		t.Fatalf("cell 1 = %d, want 258", got)
	}
	if got := int32(binary.LittleEndian.Uint32(b[0:])); got != -1 {
		t.Fatalf("cell 0 = %d, want -1", got)
	}
}

func TestSaveEmptyPath(t *testing.T) {
	if _, err := Save("", newGrid(t, 2)); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("err = %v, want ErrEmptyPath", err)
	}
}

func TestLoadMissingFileLeavesGrid(t *testing.T) {
	g := newGrid(t, 2)
	g.Set(1, 1, 9)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.level"), g, ShortReadKeep); err == nil {
		t.Fatalf("expected error")
	}
	if g.At(1, 1) != 9 {
		t.Fatalf("grid changed after failed load")
	}
}

func writeCells(t *testing.T, cells ...int32) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "short.level")
	b := make([]byte, 0, len(cells)*CellSize)
	for _, c := range cells {
		b = binary.LittleEndian.AppendUint32(b, uint32(c))
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadShortReadPolicies(t *testing.T) {
	cases := []struct {
		name    string
		policy  ShortReadPolicy
		file    []int32
		wantN   int
		wantErr error
		want    []int32
	}{
		{"keep_short", ShortReadKeep, []int32{1, 2}, 2, nil, []int32{1, 2, 7, 7}},
		{"fill_short", ShortReadFill, []int32{1, 2}, 2, nil, []int32{1, 2, -1, -1}},
		{"reject_short", ShortReadReject, []int32{1, 2}, 0, ErrSizeMismatch, []int32{7, 7, 7, 7}},
		{"reject_long", ShortReadReject, []int32{1, 2, 3, 4, 5}, 0, ErrSizeMismatch, []int32{7, 7, 7, 7}},
		{"keep_long", ShortReadKeep, []int32{1, 2, 3, 4, 5}, 4, nil, []int32{1, 2, 3, 4}},
		{"exact", ShortReadReject, []int32{4, 3, 2, 1}, 4, nil, []int32{4, 3, 2, 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newGrid(t, 2)
			for i := range g.Cells() {
				g.Cells()[i] = 7
			}
			n, err := Load(writeCells(t, c.file...), g, c.policy)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("err = %v, want %v", err, c.wantErr)
			}
			if n != c.wantN {
				t.Fatalf("read %d cells, want %d", n, c.wantN)
			}
			for i, v := range g.Cells() {
				if v != c.want[i] {
					t.Fatalf("cells = %v, want %v", g.Cells(), c.want)
				}
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	cases := map[string]ShortReadPolicy{
		"":       ShortReadReject,
		"reject": ShortReadReject,
		"Keep":   ShortReadKeep,
		" fill ": ShortReadFill,
	}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParsePolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePolicy("truncate"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
