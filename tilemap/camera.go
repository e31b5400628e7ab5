package tilemap

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilepaint/common"
)

const DefaultCameraSpeed = 200

// KeyReader reports held keys. *engine.Snapshot satisfies it.
type KeyReader interface {
	KeyDown(k ebiten.Key) bool
}

// Camera is the scroll offset of the level view. Both axes stay >= 0.
type Camera struct {
	Pos   common.Vec2
	Speed float64
}

func NewCamera(speed float64) *Camera {
	if speed <= 0 {
		speed = DefaultCameraSpeed
	}
	return &Camera{Speed: speed}
}

// Update moves the camera with WASD. On each axis only one direction is
// applied; A wins over D and W wins over S.
func (c *Camera) Update(dt float64, keys KeyReader) {
	step := c.Speed * dt
	if keys.KeyDown(ebiten.KeyA) {
		c.Pos.X -= step
	} else if keys.KeyDown(ebiten.KeyD) {
		c.Pos.X += step
	}
	if keys.KeyDown(ebiten.KeyW) {
		c.Pos.Y -= step
	} else if keys.KeyDown(ebiten.KeyS) {
		c.Pos.Y += step
	}
	c.Pos.X = max(c.Pos.X, 0)
	c.Pos.Y = max(c.Pos.Y, 0)
}
