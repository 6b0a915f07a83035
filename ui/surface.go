package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/linelife/camera"
	"github.com/pthm-cable/linelife/creature"
)

// WorldSurface draws world-space primitives through a camera. It satisfies
// renderer.Surface.
type WorldSurface struct {
	Cam *camera.Camera
}

// Point maps a world position to the screen.
func (s WorldSurface) Point(p creature.Vec2) rl.Vector2 {
	x, y := s.Cam.WorldToScreen(p.X, p.Y)
	return rl.Vector2{X: x, Y: y}
}

// DrawLine draws a segment at least one pixel wide.
func (s WorldSurface) DrawLine(a, b creature.Vec2, thickness float32, c color.RGBA) {
	rl.DrawLineEx(s.Point(a), s.Point(b), max(thickness*s.Cam.Zoom, 1), c)
}

// DrawCircle draws a filled circle at least one pixel across.
func (s WorldSurface) DrawCircle(center creature.Vec2, radius float32, c color.RGBA) {
	rl.DrawCircleV(s.Point(center), max(radius*s.Cam.Zoom, 1), c)
}

// DrawRing outlines a circle.
func (s WorldSurface) DrawRing(center creature.Vec2, radius float32, c color.RGBA) {
	p := s.Point(center)
	rl.DrawCircleLines(int32(p.X), int32(p.Y), radius*s.Cam.Zoom, c)
}
