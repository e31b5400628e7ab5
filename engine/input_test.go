package engine

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilepaint/common"
)

func TestSnapshotKeys(t *testing.T) {
	s := NewSnapshot()
	s.Keys = append(s.Keys,
		KeyAction{Key: ebiten.KeyEscape, State: KeyPress},
		KeyAction{Key: ebiten.KeyBackspace, State: KeyRepeat},
	)
	s.Hold(ebiten.KeyW, ebiten.KeyControlLeft)

	if !s.KeyPressed(ebiten.KeyEscape) {
		t.Fatalf("escape should be pressed")
	}
	if s.KeyPressed(ebiten.KeyBackspace) {
		t.Fatalf("a repeat is not a press")
	}
	if !s.KeyDown(ebiten.KeyW) || s.KeyDown(ebiten.KeyS) {
		t.Fatalf("held set mismatch")
	}
}

func TestSnapshotZeroValue(t *testing.T) {
	var s Snapshot
	if s.KeyDown(ebiten.KeyA) {
		t.Fatalf("zero snapshot has no held keys")
	}
	s.Hold(ebiten.KeyA)
	if !s.KeyDown(ebiten.KeyA) {
		t.Fatalf("Hold on zero snapshot should work")
	}
}

func TestButton(t *testing.T) {
	s := NewSnapshot()
	s.Buttons[MousePrimary] = ButtonState{JustPressed: true}
	if !s.Button(MousePrimary).Down() {
		t.Fatalf("just pressed counts as down")
	}
	if s.Button(MouseSecondary).Down() {
		t.Fatalf("secondary should be up")
	}
	if s.Button(MouseButton(7)) != (ButtonState{}) {
		t.Fatalf("out of range button should be zero")
	}
}

func TestRepeating(t *testing.T) {
	tests := []struct {
		ticks int
		want  bool
	}{
		{1, false},
		{keyRepeatDelay - 1, false},
		{keyRepeatDelay, true},
		{keyRepeatDelay + 1, false},
		{keyRepeatDelay + keyRepeatInterval, true},
	}
	for _, tt := range tests {
		if got := repeating(tt.ticks); got != tt.want {
			t.Fatalf("repeating(%d) = %v, want %v", tt.ticks, got, tt.want)
		}
	}
}

func TestRGB(t *testing.T) {
	got := RGB(1, 0, 0.5)
	want := color.NRGBA{R: 255, G: 0, B: 128, A: 255}
	if got != want {
		t.Fatalf("RGB = %v, want %v", got, want)
	}
	if RGB(-1, 2, 0) != (color.NRGBA{G: 255, A: 255}) {
		t.Fatalf("components should clamp")
	}
}

func TestPixelRect(t *testing.T) {
	tex := &Texture{Width: 64, Height: 32}
	got := tex.PixelRect(common.Rect{X: 0.25, Y: 0.5, Width: 0.25, Height: 0.5})
	if got.Min.X != 16 || got.Min.Y != 16 || got.Dx() != 16 || got.Dy() != 16 {
		t.Fatalf("PixelRect = %v", got)
	}
}
