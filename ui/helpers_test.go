package ui

import (
	"image/color"
	"testing"

	"github.com/milk9111/tilepaint/common"
	"github.com/milk9111/tilepaint/engine"
	"golang.org/x/image/font/basicfont"
)

type drawCall struct {
	kind  string
	pos   common.Vec2
	size  common.Vec2
	text  string
	color color.Color
}

// recorder is a Renderer that remembers every call.
type recorder struct {
	calls []drawCall
}

func (r *recorder) FillRect(pos, size common.Vec2, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "fill", pos: pos, size: size, color: c})
}

func (r *recorder) DrawTexture(_ *engine.Texture, _ common.Rect, pos, size common.Vec2, tint color.Color) {
	r.calls = append(r.calls, drawCall{kind: "texture", pos: pos, size: size, color: tint})
}

func (r *recorder) DrawText(_ *engine.Font, pos common.Vec2, text string, c color.Color, _ float64) {
	r.calls = append(r.calls, drawCall{kind: "text", pos: pos, text: text, color: c})
}

func (r *recorder) SetScissor(common.Rect) {}

func (r *recorder) EnableScissor(bool) {}

func (r *recorder) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.kind == "text" {
			out = append(out, c.text)
		}
	}
	return out
}

func newTestContext(t *testing.T) (*Context, *recorder) {
	t.Helper()
	r := &recorder{}
	return NewContext(engine.NewFont(basicfont.Face7x13), r, false), r
}

// input builds a snapshot with the cursor at (x, y).
func input(x, y float64) *engine.Snapshot {
	s := engine.NewSnapshot()
	s.Cursor = common.V(x, y)
	return s
}

func pressAt(x, y float64) *engine.Snapshot {
	s := input(x, y)
	s.Buttons[engine.MousePrimary] = engine.ButtonState{Pressed: true, JustPressed: true}
	return s
}

func releaseAt(x, y float64) *engine.Snapshot {
	s := input(x, y)
	s.Buttons[engine.MousePrimary] = engine.ButtonState{JustReleased: true}
	return s
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", what)
		}
	}()
	fn()
}
