package scene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ID names a registered scene.
type ID int

// Registry tracks which scene is active.
type Registry struct {
	next   ID
	active ID
	set    bool
}

// NewID allocates the next scene id, starting at 0.
func (r *Registry) NewID() ID {
	id := r.next
	r.next++
	return id
}

func (r *Registry) SetActive(id ID) {
	r.active = id
	r.set = true
}

// Active returns the active id. ok is false until SetActive is first called.
func (r *Registry) Active() (id ID, ok bool) {
	return r.active, r.set
}

func (r *Registry) IsActive(id ID) bool {
	return r.set && r.active == id
}

// Scene is one screen of the application with its own update loop.
type Scene interface {
	Update(dt float64) error
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}

// Manager runs the active scene.
type Manager struct {
	registry Registry
	scenes   map[ID]Scene
}

func NewManager() *Manager {
	return &Manager{scenes: make(map[ID]Scene)}
}

// Register adds s and returns its id. The first registered scene becomes
// active and is entered immediately.
func (m *Manager) Register(s Scene) ID {
	id := m.registry.NewID()
	m.scenes[id] = s
	if _, ok := m.registry.Active(); !ok {
		m.registry.SetActive(id)
		s.OnEnter()
	}
	return id
}

// Switch makes id the active scene. Switching to the active scene does
// nothing.
func (m *Manager) Switch(id ID) error {
	next, ok := m.scenes[id]
	if !ok {
		return fmt.Errorf("scene: unknown scene %d", id)
	}
	if m.registry.IsActive(id) {
		return nil
	}
	if cur := m.current(); cur != nil {
		cur.OnExit()
	}
	m.registry.SetActive(id)
	next.OnEnter()
	return nil
}

func (m *Manager) Active() (ID, bool) {
	return m.registry.Active()
}

func (m *Manager) IsActive(id ID) bool {
	return m.registry.IsActive(id)
}

func (m *Manager) current() Scene {
	id, ok := m.registry.Active()
	if !ok {
		return nil
	}
	return m.scenes[id]
}

// Update runs only the active scene's update.
func (m *Manager) Update(dt float64) error {
	if s := m.current(); s != nil {
		return s.Update(dt)
	}
	return nil
}

func (m *Manager) Draw(screen *ebiten.Image) {
	if s := m.current(); s != nil {
		s.Draw(screen)
	}
}
