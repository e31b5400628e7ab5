package ui

import "github.com/milk9111/tilepaint/common"

const (
	defaultPanelTitle = "Window"

	TitleBarHeight = 24
	PanelPadding   = 7.5
	PanelMargin    = 7.5
)

// Panel is a titled container that stacks added children top to bottom.
type Panel struct {
	Title NodeID
	// Offset is the layout cursor: the relative position the next added
	// child will take.
	Offset common.Vec2
}

func (*Panel) isElement() {}

func NewPanel(t *Tree, ctx *Context, title string, pos, size common.Vec2) NodeID {
	id := t.New(pos, size)
	p := &Panel{Offset: common.V(PanelPadding, TitleBarHeight+PanelMargin)}
	t.Node(id).Elem = p

	if title == "" {
		title = defaultPanelTitle
	}
	p.Title = NewLabel(t, ctx, title, common.Vec2{})
	t.Attach(id, p.Title)
	ls := t.Node(p.Title).Size
	t.SetPosition(p.Title, common.V((size.X-ls.X)/2, (TitleBarHeight-ls.Y)/2))
	return id
}

// AddNode attaches child below the previously added one. Layout is append
// only; removing or resizing children does not reflow the panel.
func AddNode(t *Tree, panel, child NodeID) {
	p := t.Panel(panel)
	t.Attach(panel, child)
	t.SetPosition(child, p.Offset)
	p.Offset.Y += t.Node(child).Size.Y + PanelMargin
}

// ElementOffset returns the layout cursor in panel-relative coordinates.
func (p *Panel) ElementOffset() common.Vec2 {
	return p.Offset
}

func (p *Panel) update(ctx *Context, t *Tree, id NodeID) {
	for _, c := range t.Node(id).Children {
		t.Update(ctx, c)
	}
}

func (p *Panel) draw(ctx *Context, t *Tree, id NodeID) {
	n := t.Node(id)
	ctx.fill(common.RectAt(n.Pos, n.Size), ctx.Theme.PanelBackground)
	ctx.fill(common.RectAt(n.Pos, common.V(n.Size.X, TitleBarHeight)), ctx.Theme.TitleBar)
	for _, c := range n.Children {
		t.Draw(ctx, c)
	}
}
