package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilepaint/common"
	"github.com/zyedidia/generic/mapset"
)

type MouseButton int

const (
	MousePrimary MouseButton = iota
	MouseSecondary
	MouseMiddle

	mouseButtonCount
)

// ButtonState is the per-frame state of one mouse button. JustPressed and
// JustReleased are edge events valid for a single frame.
type ButtonState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Down reports whether the button is pressed this frame, either as a new
// press or held from earlier frames.
func (b ButtonState) Down() bool {
	return b.Pressed || b.JustPressed
}

type KeyState int

const (
	KeyRelease KeyState = iota
	KeyPress
	KeyRepeat
)

func (s KeyState) String() string {
	switch s {
	case KeyRelease:
		return "release"
	case KeyPress:
		return "press"
	case KeyRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// KeyAction is a key event recorded during the last poll.
type KeyAction struct {
	Key   ebiten.Key
	State KeyState
}

// Snapshot is the input seen by one frame. Scroll, Chars, Keys and Paste only
// hold what happened since the previous poll.
type Snapshot struct {
	Cursor  common.Vec2
	Buttons [mouseButtonCount]ButtonState
	Scroll  common.Vec2
	Chars   []rune
	Keys    []KeyAction
	Held    mapset.Set[ebiten.Key]
	Paste   string
}

func NewSnapshot() *Snapshot {
	return &Snapshot{Held: mapset.New[ebiten.Key]()}
}

func (s *Snapshot) Button(b MouseButton) ButtonState {
	if b < 0 || b >= mouseButtonCount {
		return ButtonState{}
	}
	return s.Buttons[b]
}

// KeyDown reports whether k is currently held.
func (s *Snapshot) KeyDown(k ebiten.Key) bool {
	return s.Held.Has(k)
}

// KeyPressed reports whether k produced a press edge this frame.
func (s *Snapshot) KeyPressed(k ebiten.Key) bool {
	for _, a := range s.Keys {
		if a.Key == k && a.State == KeyPress {
			return true
		}
	}
	return false
}

// Hold marks keys as held. It is used by the poller and by tests that build
// snapshots by hand.
func (s *Snapshot) Hold(keys ...ebiten.Key) {
	if s.Held.Size() == 0 {
		s.Held = mapset.New[ebiten.Key]()
	}
	for _, k := range keys {
		s.Held.Put(k)
	}
}
