package script

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/tilepaint/tilemap"
)

// Run compiles and runs src against grid. The script sees a `level` map:
//
//	level.side                     grid side length
//	level.get(x, y)                cell value, -1 outside the grid
//	level.set(x, y, v)             writes a cell, returns false outside the grid
//	level.fill(x0, y0, x1, y1, v)  writes an inclusive rectangle clipped to the
//	                               grid, returns the count
//	level.clear()                  empties every cell
//	level.painted()                number of non-empty cells
//
// Cell values must be -1 or a non-negative int32.
// Cells written before a runtime error or cancellation stay written.
func Run(ctx context.Context, src []byte, grid *tilemap.Grid) error {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := s.Add("level", levelObject(grid)); err != nil {
		return fmt.Errorf("script: bind level: %w", err)
	}

	compiled, err := s.Compile()
	if err != nil {
		return fmt.Errorf("script: compile: %w", err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}

// RunFile reads and runs the script at path.
func RunFile(ctx context.Context, path string, grid *tilemap.Grid) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: read %s: %w", path, err)
	}
	if err := Run(ctx, src, grid); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func levelObject(grid *tilemap.Grid) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["side"] = &tengo.Int{Value: int64(grid.Side())}

	values["get"] = &tengo.UserFunction{Name: "get", Value: func(args ...tengo.Object) (tengo.Object, error) {
		xy, err := intArgs("get", args, 2)
		if err != nil {
			return nil, err
		}
		return &tengo.Int{Value: int64(grid.At(xy[0], xy[1]))}, nil
	}}

	values["set"] = &tengo.UserFunction{Name: "set", Value: func(args ...tengo.Object) (tengo.Object, error) {
		a, err := intArgs("set", args, 3)
		if err != nil {
			return nil, err
		}
		v, err := cellValue("set", a[2])
		if err != nil {
			return nil, err
		}
		return boolObject(grid.Set(a[0], a[1], v)), nil
	}}

	values["fill"] = &tengo.UserFunction{Name: "fill", Value: func(args ...tengo.Object) (tengo.Object, error) {
		a, err := intArgs("fill", args, 5)
		if err != nil {
			return nil, err
		}
		v, err := cellValue("fill", a[4])
		if err != nil {
			return nil, err
		}
		last := grid.Side() - 1
		x0, x1 := max(min(a[0], a[2]), 0), min(max(a[0], a[2]), last)
		y0, y1 := max(min(a[1], a[3]), 0), min(max(a[1], a[3]), last)
		n := 0
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if grid.Set(x, y, v) {
					n++
				}
			}
		}
		return &tengo.Int{Value: int64(n)}, nil
	}}

	values["clear"] = &tengo.UserFunction{Name: "clear", Value: func(args ...tengo.Object) (tengo.Object, error) {
		grid.Clear()
		return tengo.UndefinedValue, nil
	}}

	values["painted"] = &tengo.UserFunction{Name: "painted", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(grid.Painted())}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func intArgs(name string, args []tengo.Object, n int) ([]int, error) {
	if len(args) != n {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]int, n)
	for i, a := range args {
		v, ok := objectAsInt(a)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d must be a number, got %s", name, i+1, a.TypeName())
		}
		out[i] = v
	}
	return out, nil
}

// cellValue checks that v fits a cell: -1 for empty or a palette index.
func cellValue(name string, v int) (int32, error) {
	if v < int(tilemap.Empty) || v > math.MaxInt32 {
		return 0, fmt.Errorf("%s: cell value %d out of range [%d, %d]", name, v, tilemap.Empty, math.MaxInt32)
	}
	return int32(v), nil
}

func objectAsInt(obj tengo.Object) (int, bool) {
	switch v := obj.(type) {
	case *tengo.Int:
		return int(v.Value), true
	case *tengo.Float:
		return int(v.Value), true
	case *tengo.Char:
		return int(v.Value), true
	default:
		return 0, false
	}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
