// Package creature implements the segment-bodied creature model: body geometry,
// energy accounting, stochastic locomotion, wall collision and momentum decay.
package creature

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCreature reports a body that cannot be simulated.
	ErrInvalidCreature = errors.New("invalid creature")
	// ErrInvalidTimestep reports a negative or non-finite delta time.
	ErrInvalidTimestep = errors.New("invalid timestep")
	// ErrInvalidWorld reports arena half-extents that are not positive and finite.
	ErrInvalidWorld = errors.New("invalid world size")
)

// Source supplies the randomness consumed by locomotion.
// *math/rand.Rand satisfies it.
type Source interface {
	Float32() float32
	NormFloat64() float64
}

// Params tunes locomotion and damping.
type Params struct {
	MoveRate         float32 `yaml:"move_rate" json:"move_rate"`                   // activation rate per second at full Move share
	ForceScale       float32 `yaml:"force_scale" json:"force_scale"`               // thrust magnitude at full Move share
	BounceDamping    float32 `yaml:"bounce_damping" json:"bounce_damping"`         // momentum factor applied once per bouncing call
	MomentumHalfLife float32 `yaml:"momentum_half_life" json:"momentum_half_life"` // seconds for momentum to halve
}

// DefaultParams returns the standard locomotion constants.
func DefaultParams() Params {
	return Params{
		MoveRate:         10,
		ForceScale:       100,
		BounceDamping:    0.5,
		MomentumHalfLife: 1,
	}
}

// DefaultBody returns the default three-segment body plan.
func DefaultBody() []Segment {
	return []Segment{
		{A: V(0, 0), B: V(10, 0), Type: Energy},
		{A: V(0, 0), B: V(0, 10), Type: Move},
		{A: V(0, 0), B: V(-7, -7), Type: Attack},
	}
}

// Creature is a flat list of typed segments with motion state.
// Segments never change after construction.
type Creature struct {
	Position Vec2 // world-space location of the local origin
	Momentum Vec2
	Energy   float32

	segments []Segment
	lengths  SegmentLengths
	radius   float32
	params   Params
	dead     bool
}

// New builds a creature from the given body. The segments are copied.
func New(segments []Segment, params Params) (*Creature, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrInvalidCreature)
	}
	for i, s := range segments {
		if s.Type >= numSegmentTypes {
			return nil, fmt.Errorf("%w: segment %d has unknown type %d", ErrInvalidCreature, i, uint8(s.Type))
		}
		if !s.A.IsFinite() || !s.B.IsFinite() {
			return nil, fmt.Errorf("%w: segment %d has non-finite endpoints", ErrInvalidCreature, i)
		}
	}
	body := make([]Segment, len(segments))
	copy(body, segments)

	lengths := sumLengths(body)
	if !(lengths.Total > 0) || !isFinite(lengths.Total) {
		return nil, fmt.Errorf("%w: total segment length is %v", ErrInvalidCreature, lengths.Total)
	}

	return &Creature{
		segments: body,
		lengths:  lengths,
		radius:   radius(body),
		params:   params,
	}, nil
}

// Default builds a creature with the default body plan.
func Default(params Params) *Creature {
	c, err := New(DefaultBody(), params)
	if err != nil {
		panic(fmt.Sprintf("creature: default body rejected: %v", err))
	}
	return c
}

// Segments returns a copy of the body in creature-local space.
func (c *Creature) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// NumSegments returns the body size.
func (c *Creature) NumSegments() int {
	return len(c.segments)
}

// Params returns the locomotion constants the creature was built with.
func (c *Creature) Params() Params {
	return c.params
}

// Dead reports whether the creature has escaped the arena.
func (c *Creature) Dead() bool {
	return c.dead
}

// Radius returns the radius of the smallest origin-centered circle enclosing the body.
func (c *Creature) Radius() float32 {
	return c.radius
}

// SegmentLengths returns total segment length per type.
func (c *Creature) SegmentLengths() SegmentLengths {
	return c.lengths
}

// EnergyIncome is the total length of Energy segments.
func (c *Creature) EnergyIncome() float32 {
	return c.lengths.Energy
}

// EnergyRequirement is the upkeep of all non-energy segments plus a size tax equal to the radius.
func (c *Creature) EnergyRequirement() float32 {
	return c.lengths.Attack + c.lengths.Defend + c.lengths.Move + c.radius
}

// MovementChance is the share of body length made of Move segments.
func (c *Creature) MovementChance() float32 {
	return c.lengths.Move / c.lengths.Total
}

// Update advances the creature by dt seconds inside an arena with the given half-extents.
// Order: locomotion, wall collision, position integration, momentum decay.
// Dead creatures are left untouched.
//
// dt is interpreted as a rate multiplier for locomotion; values large enough to push the
// activation probability past 1 always trigger a thrust.
func (c *Creature) Update(dt float32, worldSize Vec2, rng Source) error {
	if err := ValidateStep(dt, worldSize); err != nil {
		return err
	}
	if c.dead {
		return nil
	}

	c.maybeMove(dt, rng)
	c.checkWallCollision(dt, worldSize)
	c.Position = c.Position.Add(c.Momentum.Scale(dt))
	c.Momentum = c.Momentum.Scale(Decay(dt, c.params.MomentumHalfLife))
	return nil
}

// ValidateStep checks the inputs of Update without touching any creature.
func ValidateStep(dt float32, worldSize Vec2) error {
	if !isFinite(dt) || dt < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimestep, dt)
	}
	if !worldSize.IsFinite() || worldSize.X <= 0 || worldSize.Y <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWorld, worldSize)
	}
	return nil
}

// Decay returns the factor momentum is multiplied by after dt seconds,
// halving every halfLife seconds. A non-positive halfLife disables decay.
func Decay(dt, halfLife float32) float32 {
	if halfLife <= 0 {
		return 1
	}
	return float32(math.Exp(-math.Ln2 * float64(dt) / float64(halfLife)))
}
