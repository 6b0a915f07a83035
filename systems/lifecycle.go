package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/linelife/components"
	"github.com/pthm-cable/linelife/creature"
)

// Removed describes a creature swept from the world.
type Removed struct {
	Identity components.Identity
	Creature *creature.Creature
}

// Lifecycle spawns creatures into the world and removes dead ones.
type Lifecycle struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Body, components.Stream, components.Identity]
	filter *ecs.Filter2[components.Body, components.Identity]
	nextID uint32
	alive  int

	// scratch for two-pass removal
	toRemove []ecs.Entity
	removed  []Removed
}

// NewLifecycle creates a lifecycle manager for the world.
func NewLifecycle(w *ecs.World) *Lifecycle {
	return &Lifecycle{
		world:  w,
		mapper: ecs.NewMap3[components.Body, components.Stream, components.Identity](w),
		filter: ecs.NewFilter2[components.Body, components.Identity](w),
	}
}

// Spawn adds a creature with its own stream seeded by seed.
func (l *Lifecycle) Spawn(c *creature.Creature, seed int64, tick int32) ecs.Entity {
	id := l.nextID
	l.nextID++

	body := components.Body{Creature: c}
	stream := components.NewStream(seed)
	ident := components.Identity{ID: id, BornTick: tick}

	l.alive++
	return l.mapper.NewEntity(&body, &stream, &ident)
}

// Sweep removes every dead creature and returns what was removed.
// The returned slice is reused by the next call.
func (l *Lifecycle) Sweep() []Removed {
	// First pass: collect (no structural changes during query iteration)
	l.toRemove = l.toRemove[:0]
	l.removed = l.removed[:0]

	query := l.filter.Query()
	for query.Next() {
		body, ident := query.Get()
		if body.Creature != nil && !body.Creature.Dead() {
			continue
		}
		l.toRemove = append(l.toRemove, query.Entity())
		l.removed = append(l.removed, Removed{Identity: *ident, Creature: body.Creature})
	}

	// Second pass: remove
	for _, e := range l.toRemove {
		l.world.RemoveEntity(e)
	}
	l.alive -= len(l.toRemove)

	return l.removed
}

// Each calls fn for every creature in the world, dead or alive.
// fn must not add or remove entities.
func (l *Lifecycle) Each(fn func(components.Identity, *creature.Creature)) {
	query := l.filter.Query()
	for query.Next() {
		body, ident := query.Get()
		fn(*ident, body.Creature)
	}
}

// Lookup returns the creature with the given ID, or nil if it is gone.
func (l *Lifecycle) Lookup(id uint32) *creature.Creature {
	query := l.filter.Query()
	for query.Next() {
		body, ident := query.Get()
		if ident.ID == id {
			query.Close()
			return body.Creature
		}
	}
	return nil
}

// Alive returns the number of creatures in the world.
func (l *Lifecycle) Alive() int {
	return l.alive
}

// Reset removes every creature. Identities keep counting up.
func (l *Lifecycle) Reset() {
	l.toRemove = l.toRemove[:0]
	query := l.filter.Query()
	for query.Next() {
		l.toRemove = append(l.toRemove, query.Entity())
	}
	for _, e := range l.toRemove {
		l.world.RemoveEntity(e)
	}
	l.alive = 0
}

// Place puts c at a uniformly random position where its whole body lies at least
// margin inside the arena. Axes too small for the body collapse to the center.
func Place(c *creature.Creature, worldSize creature.Vec2, margin float32, rng *rand.Rand) {
	r := c.Radius() + margin
	c.Position = creature.V(
		placeAxis(worldSize.X-r, rng),
		placeAxis(worldSize.Y-r, rng),
	)
}

func placeAxis(half float32, rng *rand.Rand) float32 {
	if half <= 0 {
		return 0
	}
	return (rng.Float32()*2 - 1) * half
}

// Restore adds a creature with a known identity, as read back from a snapshot.
// Later spawns get IDs above every restored one.
func (l *Lifecycle) Restore(c *creature.Creature, ident components.Identity, seed int64) ecs.Entity {
	if ident.ID >= l.nextID {
		l.nextID = ident.ID + 1
	}

	body := components.Body{Creature: c}
	stream := components.NewStream(seed)

	l.alive++
	return l.mapper.NewEntity(&body, &stream, &ident)
}
