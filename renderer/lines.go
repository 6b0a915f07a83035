// Package renderer turns creatures into colored world-space line primitives
// and draws them onto a Surface.
package renderer

import (
	"image/color"

	"github.com/pthm-cable/linelife/creature"
)

// Line is a colored segment in world space.
type Line struct {
	A, B  creature.Vec2
	Color color.RGBA
}

// Palette maps segment types to colors.
type Palette [4]color.RGBA

// DefaultPalette colors Energy green, Attack red, Defend blue and Move yellow.
var DefaultPalette = Palette{
	creature.Energy: {R: 80, G: 220, B: 100, A: 255},
	creature.Attack: {R: 235, G: 70, B: 70, A: 255},
	creature.Defend: {R: 80, G: 140, B: 245, A: 255},
	creature.Move:   {R: 245, G: 215, B: 70, A: 255},
}

var unknownColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// Color returns the color for t.
func (p *Palette) Color(t creature.SegmentType) color.RGBA {
	if int(t) < len(p) {
		return p[t]
	}
	return unknownColor
}

// AppendLines appends the world-space lines of c to dst.
// Dead creatures contribute nothing.
func (p *Palette) AppendLines(dst []Line, c *creature.Creature) []Line {
	if c == nil || c.Dead() {
		return dst
	}
	for _, s := range c.Segments() {
		dst = append(dst, Line{
			A:     c.Position.Add(s.A),
			B:     c.Position.Add(s.B),
			Color: p.Color(s.Type),
		})
	}
	return dst
}

// Lines returns the world-space lines of c in DefaultPalette.
func Lines(c *creature.Creature) []Line {
	return DefaultPalette.AppendLines(nil, c)
}
