package ui

import (
	"image/color"

	"github.com/milk9111/tilepaint/common"
)

// Label is a single line of text. Its node size is the measured text size.
type Label struct {
	buf   []byte
	Color color.Color
	Scale float64
}

func (*Label) isElement() {}

func (l *Label) Text() string {
	return string(l.buf)
}

// NewLabel creates an unparented label at pos.
func NewLabel(t *Tree, ctx *Context, text string, pos common.Vec2) NodeID {
	id := t.New(pos, common.Vec2{})
	t.Node(id).Elem = &Label{Color: ctx.Theme.Text, Scale: ctx.TextScale()}
	SetLabelText(t, ctx, id, text)
	return id
}

// SetLabelText replaces the label text and remeasures it. Empty text is
// ignored. The label is not re-aligned; call AlignToParent afterwards when
// it should stay centred.
func SetLabelText(t *Tree, ctx *Context, id NodeID, text string) {
	if text == "" {
		return
	}
	l := t.Label(id)
	if len(text)+1 > cap(l.buf) {
		l.buf = make([]byte, 0, len(text)+1)
	}
	l.buf = append(l.buf[:0], text...)
	CalculateLabelSize(t, ctx, id)
}

func CalculateLabelSize(t *Tree, ctx *Context, id NodeID) {
	l := t.Label(id)
	t.Node(id).Size = ctx.textSize(l.Text(), l.Scale)
}

// AlignToParent centres id inside its parent. Unparented nodes are left
// where they are.
func AlignToParent(t *Tree, id NodeID) {
	n := t.Node(id)
	if !n.Parent.Valid() {
		return
	}
	p := t.Node(n.Parent)
	t.SetPosition(id, p.Size.Sub(n.Size).Scale(0.5))
}

func (l *Label) draw(ctx *Context, t *Tree, id NodeID) {
	ctx.text(t.Node(id).Pos, l.Text(), l.Color, l.Scale)
}
