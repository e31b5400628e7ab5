package ui

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilepaint/common"
	"github.com/milk9111/tilepaint/engine"
)

const (
	defaultPlaceholder = "Input"
	defaultMaxLen      = 255
	inputInitialCap    = 8
)

var inputSize = common.V(100, 25)

// Input is a single-line text field. It takes focus when clicked and drops
// it on any click outside. Characters beyond MaxLen are rejected.
type Input struct {
	buf         []rune
	Placeholder string
	MaxLen      int
	Scale       float64
	CursorOver  bool
	Focused     bool
}

func (*Input) isElement() {}

func NewInput(t *Tree, ctx *Context, placeholder string, pos common.Vec2) NodeID {
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}
	id := t.New(pos, inputSize)
	t.Node(id).Elem = &Input{
		buf:         make([]rune, 0, inputInitialCap),
		Placeholder: placeholder,
		MaxLen:      defaultMaxLen,
		Scale:       ctx.TextScale(),
	}
	return id
}

func (in *Input) Text() string {
	return string(in.buf)
}

// Cap returns the current buffer capacity in runes.
func (in *Input) Cap() int {
	return cap(in.buf)
}

// SetText replaces the buffer, truncating to MaxLen.
func (in *Input) SetText(s string) {
	in.Clear()
	for _, r := range s {
		if !in.appendRune(r) {
			return
		}
	}
}

func (in *Input) Clear() {
	in.buf = in.buf[:0]
}

// Backspace removes the last character, if any.
func (in *Input) Backspace() {
	if len(in.buf) > 0 {
		in.buf = in.buf[:len(in.buf)-1]
	}
}

func (in *Input) appendRune(r rune) bool {
	if unicode.IsControl(r) {
		return true
	}
	if in.MaxLen > 0 && len(in.buf) >= in.MaxLen {
		return false
	}
	if len(in.buf) == cap(in.buf) {
		n := cap(in.buf) * 2
		if n == 0 {
			n = inputInitialCap
		}
		grown := make([]rune, len(in.buf), n)
		copy(grown, in.buf)
		in.buf = grown
	}
	in.buf = append(in.buf, r)
	return true
}

func (in *Input) update(ctx *Context, t *Tree, id NodeID) {
	s := ctx.Input
	in.CursorOver = t.Rect(id).Contains(s.Cursor)
	if s.Button(engine.MousePrimary).JustPressed {
		in.Focused = in.CursorOver
	}
	if !in.Focused {
		return
	}
	ctx.RequestTextInput()

	for _, r := range s.Chars {
		in.appendRune(r)
	}
	for _, r := range s.Paste {
		in.appendRune(r)
	}
	for _, k := range s.Keys {
		if k.Key != ebiten.KeyBackspace {
			continue
		}
		if k.State == engine.KeyPress || k.State == engine.KeyRepeat {
			in.Backspace()
		}
	}
}

func (in *Input) draw(ctx *Context, t *Tree, id NodeID) {
	n := t.Node(id)
	ctx.fill(common.RectAt(n.Pos, n.Size), ctx.Theme.InputBackground)

	text, c := in.Text(), ctx.Theme.Text
	if text == "" {
		text, c = in.Placeholder, ctx.Theme.Placeholder
	}
	size := ctx.textSize(text, in.Scale)
	ctx.text(n.Pos.Add(n.Size.Sub(size).Scale(0.5)), text, c, in.Scale)
}
