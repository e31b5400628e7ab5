package engine

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilepaint/common"
	"golang.design/x/clipboard"
)

const (
	// Ticks a key must be held before it starts repeating, and the interval
	// between repeats after that.
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

var trackedButtons = [mouseButtonCount]ebiten.MouseButton{
	MousePrimary:   ebiten.MouseButtonLeft,
	MouseSecondary: ebiten.MouseButtonRight,
	MouseMiddle:    ebiten.MouseButtonMiddle,
}

// Poller turns ebiten's input state into a Snapshot once per frame.
type Poller struct {
	textInput    bool
	clipboardOK  bool
	keys         []ebiten.Key
	snapshot     *Snapshot
	charsScratch []rune
}

func NewPoller() *Poller {
	p := &Poller{}
	if err := clipboard.Init(); err != nil {
		common.Errorf("clipboard unavailable, paste disabled: %v", err)
	} else {
		p.clipboardOK = true
	}
	return p
}

// SetTextInput turns character forwarding on or off. While off, typed
// characters and clipboard pastes are dropped.
func (p *Poller) SetTextInput(enabled bool) {
	p.textInput = enabled
}

func (p *Poller) TextInput() bool {
	return p.textInput
}

// Poll replaces the previous frame's snapshot. Edge state from the previous
// frame is discarded.
func (p *Poller) Poll() *Snapshot {
	s := NewSnapshot()

	cx, cy := ebiten.CursorPosition()
	s.Cursor = common.V(float64(cx), float64(cy))

	for i, mb := range trackedButtons {
		s.Buttons[i] = ButtonState{
			Pressed:      ebiten.IsMouseButtonPressed(mb),
			JustPressed:  inpututil.IsMouseButtonJustPressed(mb),
			JustReleased: inpututil.IsMouseButtonJustReleased(mb),
		}
	}

	wx, wy := ebiten.Wheel()
	s.Scroll = common.V(wx, wy)

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		s.Keys = append(s.Keys, KeyAction{Key: k, State: KeyPress})
	}

	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		s.Hold(k)
		if repeating(inpututil.KeyPressDuration(k)) {
			s.Keys = append(s.Keys, KeyAction{Key: k, State: KeyRepeat})
		}
	}

	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		s.Keys = append(s.Keys, KeyAction{Key: k, State: KeyRelease})
	}

	if p.textInput {
		p.charsScratch = ebiten.AppendInputChars(p.charsScratch[:0])
		s.Chars = append(s.Chars, p.charsScratch...)
		if p.clipboardOK && pasteRequested(s) {
			s.Paste = strings.TrimRight(string(clipboard.Read(clipboard.FmtText)), "\r\n")
		}
	}

	p.snapshot = s
	return s
}

// Snapshot returns the most recent poll result.
func (p *Poller) Snapshot() *Snapshot {
	if p.snapshot == nil {
		return NewSnapshot()
	}
	return p.snapshot
}

func repeating(d int) bool {
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

func pasteRequested(s *Snapshot) bool {
	if !s.KeyPressed(ebiten.KeyV) {
		return false
	}
	return s.KeyDown(ebiten.KeyControlLeft) || s.KeyDown(ebiten.KeyControlRight) ||
		s.KeyDown(ebiten.KeyMetaLeft) || s.KeyDown(ebiten.KeyMetaRight)
}
