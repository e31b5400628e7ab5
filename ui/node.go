package ui

import (
	"fmt"
	"slices"

	"github.com/milk9111/tilepaint/common"
)

// NodeID is a handle to a node in a Tree. The zero value names no node.
type NodeID struct {
	id  int
	gen int
}

func (n NodeID) Valid() bool {
	return n.id > 0
}

func (n NodeID) String() string {
	return fmt.Sprintf("#%d.%d", n.id, n.gen)
}

// Element is the widget payload of a node: *Label, *Button, *Input or
// *Panel. A nil Element is a plain container node.
type Element interface {
	isElement()
}

// Node is one positioned element of the UI hierarchy. Pos is absolute;
// RelPos is the last position passed to SetPosition, relative to Parent when
// there is one.
type Node struct {
	Pos      common.Vec2
	RelPos   common.Vec2
	Size     common.Vec2
	Visible  bool
	Parent   NodeID
	Children []NodeID
	Elem     Element
}

// Tree owns every node. Pointers returned by Node stay valid until the next
// call to New.
type Tree struct {
	store nodeStore
	nodes []Node
	live  int
}

func NewTree() *Tree {
	return &Tree{}
}

// New creates a visible, unparented node with no element.
func (t *Tree) New(pos, size common.Vec2) NodeID {
	id := t.store.create()
	n := Node{Pos: pos, RelPos: pos, Size: size, Visible: true}
	if id.id > len(t.nodes) {
		t.nodes = append(t.nodes, n)
	} else {
		t.nodes[id.id-1] = n
	}
	t.live++
	return id
}

func (t *Tree) Alive(id NodeID) bool {
	return t.store.isAlive(id)
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return t.live
}

// Node panics when id is stale or zero.
func (t *Tree) Node(id NodeID) *Node {
	if !t.store.isAlive(id) {
		panic(fmt.Sprintf("ui: stale node handle %s", id))
	}
	return &t.nodes[id.id-1]
}

func (t *Tree) Rect(id NodeID) common.Rect {
	n := t.Node(id)
	return common.RectAt(n.Pos, n.Size)
}

// Destroy frees id and its whole subtree, payloads first, then children,
// then the node itself.
func (t *Tree) Destroy(id NodeID) {
	n := t.Node(id)
	if n.Parent.Valid() && t.Alive(n.Parent) {
		t.detach(n.Parent, id)
	}
	t.destroy(id)
}

func (t *Tree) destroy(id NodeID) {
	n := t.Node(id)
	releaseElement(n.Elem)
	children := n.Children
	for _, c := range children {
		t.destroy(c)
	}
	t.nodes[id.id-1] = Node{}
	t.store.destroy(id)
	t.live--
}

// SetPosition places id at p, relative to its parent when it has one, and
// re-derives the absolute position of every descendant.
func (t *Tree) SetPosition(id NodeID, p common.Vec2) {
	n := t.Node(id)
	n.RelPos = p
	if n.Parent.Valid() {
		n.Pos = t.Node(n.Parent).Pos.Add(p)
	} else {
		n.Pos = p
	}
	t.propagate(id)
}

func (t *Tree) propagate(id NodeID) {
	n := t.Node(id)
	for _, c := range n.Children {
		cn := t.Node(c)
		cn.Pos = n.Pos.Add(cn.RelPos)
		t.propagate(c)
	}
}

// Attach appends child to parent's children. A child that already has a
// parent is moved. Attaching a node under itself or one of its descendants
// panics.
func (t *Tree) Attach(parent, child NodeID) {
	for p := parent; p.Valid(); p = t.Node(p).Parent {
		if p == child {
			panic(fmt.Sprintf("ui: attaching %s under %s would create a cycle", child, parent))
		}
	}
	c := t.Node(child)
	if c.Parent.Valid() {
		t.detach(c.Parent, child)
	}
	c.Parent = parent
	pn := t.Node(parent)
	pn.Children = append(pn.Children, child)
	t.SetPosition(child, c.RelPos)
}

func (t *Tree) detach(parent, child NodeID) {
	pn := t.Node(parent)
	if i := slices.Index(pn.Children, child); i >= 0 {
		pn.Children = slices.Delete(pn.Children, i, i+1)
	}
	t.Node(child).Parent = NodeID{}
}

// Update runs the per-frame logic of id's element. Invisible nodes are
// skipped together with their subtree.
func (t *Tree) Update(ctx *Context, id NodeID) {
	n := t.Node(id)
	if !n.Visible {
		return
	}
	switch e := n.Elem.(type) {
	case nil, *Label:
	case *Button:
		e.update(ctx, t, id)
	case *Input:
		e.update(ctx, t, id)
	case *Panel:
		e.update(ctx, t, id)
	}
}

// Draw renders id's element and, for containers, its children.
func (t *Tree) Draw(ctx *Context, id NodeID) {
	n := t.Node(id)
	if !n.Visible {
		return
	}
	switch e := n.Elem.(type) {
	case nil:
	case *Label:
		e.draw(ctx, t, id)
	case *Button:
		e.draw(ctx, t, id)
	case *Input:
		e.draw(ctx, t, id)
	case *Panel:
		e.draw(ctx, t, id)
	}
}

func (t *Tree) Label(id NodeID) *Label {
	e, ok := t.Node(id).Elem.(*Label)
	if !ok {
		t.mismatch(id, "label")
	}
	return e
}

func (t *Tree) Button(id NodeID) *Button {
	e, ok := t.Node(id).Elem.(*Button)
	if !ok {
		t.mismatch(id, "button")
	}
	return e
}

func (t *Tree) Input(id NodeID) *Input {
	e, ok := t.Node(id).Elem.(*Input)
	if !ok {
		t.mismatch(id, "input")
	}
	return e
}

func (t *Tree) Panel(id NodeID) *Panel {
	e, ok := t.Node(id).Elem.(*Panel)
	if !ok {
		t.mismatch(id, "panel")
	}
	return e
}

func (t *Tree) mismatch(id NodeID, want string) {
	panic(fmt.Sprintf("ui: node %s is a %s, not a %s", id, kindOf(t.Node(id).Elem), want))
}

func kindOf(e Element) string {
	switch e.(type) {
	case nil:
		return "plain node"
	case *Label:
		return "label"
	case *Button:
		return "button"
	case *Input:
		return "input"
	case *Panel:
		return "panel"
	default:
		return fmt.Sprintf("%T", e)
	}
}

func releaseElement(e Element) {
	switch e := e.(type) {
	case nil, *Panel:
	case *Label:
		e.buf = nil
	case *Button:
		e.OnClick = nil
	case *Input:
		e.buf = nil
	}
}
