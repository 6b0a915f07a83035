package inspector

import "github.com/pthm-cable/linelife/creature"

// pickSlack widens the hit circle so small creatures stay clickable.
const pickSlack = 4

// Candidate is a creature that can be clicked.
type Candidate struct {
	ID       uint32
	Position creature.Vec2
	Radius   float32
}

// Picker finds the creature under a world-space point.
type Picker struct {
	candidates []Candidate
}

// Reset clears the candidate list for a new frame.
func (p *Picker) Reset() {
	p.candidates = p.candidates[:0]
}

// Add registers a live creature as clickable.
func (p *Picker) Add(id uint32, c *creature.Creature) {
	if c == nil || c.Dead() {
		return
	}
	p.candidates = append(p.candidates, Candidate{ID: id, Position: c.Position, Radius: c.Radius()})
}

// Pick returns the candidate whose hit circle contains point, preferring the
// one whose center is closest.
func (p *Picker) Pick(point creature.Vec2) (uint32, bool) {
	var (
		best  uint32
		bestD float32
		found bool
	)
	for _, c := range p.candidates {
		d := point.Sub(c.Position).LengthSquared()
		r := c.Radius + pickSlack
		if d > r*r {
			continue
		}
		if !found || d < bestD {
			best, bestD, found = c.ID, d, true
		}
	}
	return best, found
}
