package renderer

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/pthm-cable/linelife/creature"
)

// Particle is a short-lived effect dot in world space.
type Particle struct {
	Pos, Vel creature.Vec2
	Life     float32 // seconds left
	MaxLife  float32
	Size     float32
	Color    color.RGBA
}

// Particles renders death bursts where creatures left the arena.
type Particles struct {
	items []Particle
	rng   *rand.Rand
}

// NewParticles creates an empty effect set.
func NewParticles(seed int64) *Particles {
	return &Particles{rng: rand.New(rand.NewSource(seed))}
}

// Burst emits n particles at the creature's position, one color per segment in turn.
func (p *Particles) Burst(c *creature.Creature, n int) {
	segs := c.Segments()
	if len(segs) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		angle := p.rng.Float64() * 2 * math.Pi
		speed := 20 + p.rng.Float32()*60
		life := 0.4 + p.rng.Float32()*0.6
		p.items = append(p.items, Particle{
			Pos:     c.Position,
			Vel:     creature.V(float32(math.Cos(angle))*speed, float32(math.Sin(angle))*speed),
			Life:    life,
			MaxLife: life,
			Size:    1.5 + p.rng.Float32()*1.5,
			Color:   DefaultPalette.Color(segs[i%len(segs)].Type),
		})
	}
}

// Update ages and moves particles, dropping expired ones.
func (p *Particles) Update(dt float32) {
	live := p.items[:0]
	for _, it := range p.items {
		it.Life -= dt
		if it.Life <= 0 {
			continue
		}
		it.Pos = it.Pos.Add(it.Vel.Scale(dt))
		live = append(live, it)
	}
	p.items = live
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	return len(p.items)
}

// Clear drops every particle.
func (p *Particles) Clear() {
	p.items = p.items[:0]
}

// Draw renders particles fading out over their life.
func (p *Particles) Draw(s Surface) {
	for i := range p.items {
		it := &p.items[i]
		ratio := it.Life / it.MaxLife

		c := it.Color
		c.A = uint8(ratio * 200)
		s.DrawCircle(it.Pos, max(it.Size*ratio, 0.5), c)
	}
}
