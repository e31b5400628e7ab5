package scene

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeScene struct {
	name    string
	log     *[]string
	updates int
	err     error
}

func (s *fakeScene) Update(float64) error {
	s.updates++
	return s.err
}

func (s *fakeScene) Draw(*ebiten.Image) {}

func (s *fakeScene) OnEnter() { *s.log = append(*s.log, "enter "+s.name) }

func (s *fakeScene) OnExit() { *s.log = append(*s.log, "exit "+s.name) }

func TestRegistryIDs(t *testing.T) {
	var r Registry
	if _, ok := r.Active(); ok {
		t.Fatalf("no scene should be active yet")
	}
	a, b, c := r.NewID(), r.NewID(), r.NewID()
	if a != 0 || b != 1 || c != 2 {
		t.Fatalf("ids = %d %d %d", a, b, c)
	}
	r.SetActive(b)
	if !r.IsActive(b) || r.IsActive(a) {
		t.Fatalf("active mismatch")
	}
	if r.NewID() != 3 {
		t.Fatalf("SetActive should not affect id allocation")
	}
}

func TestManagerSwitch(t *testing.T) {
	var log []string
	editor := &fakeScene{name: "editor", log: &log}
	preview := &fakeScene{name: "preview", log: &log}

	m := NewManager()
	eid := m.Register(editor)
	pid := m.Register(preview)

	if err := m.Update(0.016); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if editor.updates != 1 || preview.updates != 0 {
		t.Fatalf("only the active scene should update: %d %d", editor.updates, preview.updates)
	}

	if err := m.Switch(pid); err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if err := m.Switch(pid); err != nil {
		t.Fatalf("Switch to active: %v", err)
	}
	_ = m.Update(0.016)
	if preview.updates != 1 {
		t.Fatalf("preview updates = %d", preview.updates)
	}
	if err := m.Switch(eid); err != nil {
		t.Fatalf("Switch back: %v", err)
	}

	want := []string{"enter editor", "exit editor", "enter preview", "exit preview", "enter editor"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}

	if err := m.Switch(ID(42)); err == nil {
		t.Fatalf("expected error for unknown scene")
	}
}

func TestManagerPropagatesUpdateError(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	m := NewManager()
	m.Register(&fakeScene{name: "a", log: &log, err: boom})
	if err := m.Update(0); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
