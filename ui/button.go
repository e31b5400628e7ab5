package ui

import (
	"github.com/milk9111/tilepaint/common"
	"github.com/milk9111/tilepaint/engine"
)

const defaultButtonText = "Click Me!"

var buttonSize = common.V(80, 25)

// Button runs OnClick once for every press that is released while the
// cursor is still over it.
type Button struct {
	Label      NodeID
	CursorOver bool
	ClickedOn  bool
	OnClick    func()
}

func (*Button) isElement() {}

func NewButton(t *Tree, ctx *Context, text string, pos common.Vec2, onClick func()) NodeID {
	id := t.New(pos, buttonSize)
	b := &Button{OnClick: onClick}
	t.Node(id).Elem = b

	if text == "" {
		text = defaultButtonText
	}
	b.Label = NewLabel(t, ctx, text, common.Vec2{})
	t.Attach(id, b.Label)
	AlignToParent(t, b.Label)
	return id
}

func (b *Button) update(ctx *Context, t *Tree, id NodeID) {
	b.CursorOver = t.Rect(id).Contains(ctx.Input.Cursor)

	primary := ctx.Input.Button(engine.MousePrimary)
	if primary.JustPressed && b.CursorOver {
		b.ClickedOn = true
	}
	if primary.JustReleased && b.ClickedOn {
		b.ClickedOn = false
		if b.CursorOver && b.OnClick != nil {
			b.OnClick()
		}
	}
}

func (b *Button) draw(ctx *Context, t *Tree, id NodeID) {
	c := ctx.Theme.ButtonIdle
	if b.CursorOver {
		c = ctx.Theme.ButtonHover
	}
	r := t.Rect(id)
	if b.ClickedOn {
		r = r.Inset(1)
	}
	ctx.fill(r, c)
	t.Draw(ctx, b.Label)
}
