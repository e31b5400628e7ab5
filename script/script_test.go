package script

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/tilepaint/tilemap"
)

func newGrid(t *testing.T) *tilemap.Grid {
	t.Helper()
	g, err := tilemap.NewGrid(8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestRunBindings(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		check func(t *testing.T, g *tilemap.Grid)
	}{
		{
			name: "set_and_get",
			src: `
level.set(1, 2, 5)
if level.get(1, 2) != 5 { level.set(0, 0, 99) }
`,
			check: func(t *testing.T, g *tilemap.Grid) {
				if g.At(1, 2) != 5 || g.At(0, 0) != tilemap.Empty {
					t.Fatalf("cells = %v", g.Cells())
				}
			},
		},
		{
			name: "out_of_range",
			src: `
ok := level.set(level.side, 0, 1)
if !ok && level.get(-1, 0) == -1 { level.set(0, 0, 1) }
`,
			check: func(t *testing.T, g *tilemap.Grid) {
				if g.At(0, 0) != 1 || g.Painted() != 1 {
					t.Fatalf("cells = %v", g.Cells())
				}
			},
		},
		{
			name: "border_with_stdlib",
			src: `
math := import("math")
last := level.side - 1
for i := 0; i <= last; i++ {
	level.set(i, 0, int(math.pi) - 1)
	level.set(i, last, 2)
}
`,
			check: func(t *testing.T, g *tilemap.Grid) {
				if g.Painted() != 16 || g.At(7, 7) != 2 {
					t.Fatalf("painted = %d", g.Painted())
				}
			},
		},
		{
			name: "fill_then_clear_part",
			src: `
n := level.fill(2, 2, 0, 0, 4)
if n == 9 { level.set(7, 7, level.painted()) }
`,
			check: func(t *testing.T, g *tilemap.Grid) {
				if g.At(1, 1) != 4 || g.At(7, 7) != 9 {
					t.Fatalf("cells = %v", g.Cells())
				}
			},
		},
		{
			name: "clear",
			src:  `level.clear()`,
			check: func(t *testing.T, g *tilemap.Grid) {
				if g.Painted() != 0 {
					t.Fatalf("clear left %d cells", g.Painted())
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newGrid(t)
			if c.name == "clear" {
				g.Set(3, 3, 1)
			}
			if err := Run(context.Background(), []byte(c.src), g); err != nil {
				t.Fatalf("Run: %v", err)
			}
			c.check(t, g)
		})
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", `level.set(1, `},
		{"wrong_arity", `level.set(1, 2)`},
		{"wrong_type", `level.set("a", 2, 3)`},
		{"set_value_overflows_int32", `level.set(0, 0, 4294967296)`},
		{"set_value_below_empty", `level.set(0, 0, -2)`},
		{"fill_value_overflows_int32", `level.fill(0, 0, 1, 1, 2147483648)`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := Run(context.Background(), []byte(c.src), newGrid(t)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestRunTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	g := newGrid(t)
	err := Run(ctx, []byte(`level.set(0, 0, 1); for { }`), g)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if g.At(0, 0) != 1 {
		t.Fatalf("writes before cancellation should stay")
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paint.tengo")
	if err := os.WriteFile(path, []byte(`level.set(3, 4, 7)`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	g := newGrid(t)
	if err := RunFile(context.Background(), path, g); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if g.At(3, 4) != 7 {
		t.Fatalf("cell = %d", g.At(3, 4))
	}
	if err := RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.tengo"), g); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFillClipsToGrid(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		result [2]int
		want   int32
	}{
		{"huge", `level.set(0, 0, level.fill(0, 0, 200000, 200000, 1))`, [2]int{0, 0}, 64},
		{"negative_corner", `level.set(7, 7, level.fill(-100000, -100000, 1, 1, 1))`, [2]int{7, 7}, 4},
		{"outside", `level.set(0, 0, level.fill(100, 100, 200000, 200000, 1))`, [2]int{0, 0}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			g := newGrid(t)
			start := time.Now()
			if err := Run(ctx, []byte(c.src), g); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if d := time.Since(start); d > time.Second {
				t.Fatalf("fill took %v", d)
			}
			// Each script stores fill's return value in a cell.
			if got := g.At(c.result[0], c.result[1]); got != c.want {
				t.Fatalf("fill returned %d, want %d", got, c.want)
			}
		})
	}
}

func TestSetRejectsBadValueWithoutWriting(t *testing.T) {
	g := newGrid(t)
	g.Set(0, 0, 3)
	if err := Run(context.Background(), []byte(`level.set(0, 0, 4294967296)`), g); err == nil {
		t.Fatalf("expected error for value outside int32")
	}
	if g.At(0, 0) != 3 {
		t.Fatalf("cell = %d, want 3", g.At(0, 0))
	}
	if err := Run(context.Background(), []byte(`level.set(0, 0, -1)`), g); err != nil {
		t.Fatalf("erasing with -1: %v", err)
	}
}
