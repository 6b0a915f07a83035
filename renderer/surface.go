package renderer

import (
	"image/color"

	"github.com/pthm-cable/linelife/creature"
)

// Surface is a drawing target in world coordinates.
type Surface interface {
	DrawLine(a, b creature.Vec2, thickness float32, c color.RGBA)
	DrawCircle(center creature.Vec2, radius float32, c color.RGBA)
}

// LineRenderer batches creature lines for one frame.
type LineRenderer struct {
	Palette   Palette
	Thickness float32 // world units

	lines []Line
}

// NewLineRenderer creates a renderer with the default palette.
func NewLineRenderer(thickness float32) *LineRenderer {
	return &LineRenderer{Palette: DefaultPalette, Thickness: thickness}
}

// Begin clears the batch.
func (r *LineRenderer) Begin() {
	r.lines = r.lines[:0]
}

// Add queues the lines of c.
func (r *LineRenderer) Add(c *creature.Creature) {
	r.lines = r.Palette.AppendLines(r.lines, c)
}

// Lines returns the queued lines. The slice is reused after Begin.
func (r *LineRenderer) Lines() []Line {
	return r.lines
}

// Flush draws every queued line onto s.
func (r *LineRenderer) Flush(s Surface) {
	for _, l := range r.lines {
		s.DrawLine(l.A, l.B, r.Thickness, l.Color)
	}
}

// DrawArena outlines the arena with the given half-extents.
func DrawArena(s Surface, worldSize creature.Vec2, thickness float32, c color.RGBA) {
	x, y := worldSize.X, worldSize.Y
	corners := [4]creature.Vec2{{X: -x, Y: -y}, {X: x, Y: -y}, {X: x, Y: y}, {X: -x, Y: y}}
	for i := range corners {
		s.DrawLine(corners[i], corners[(i+1)%4], thickness, c)
	}
}
