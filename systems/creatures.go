// Package systems contains ECS systems for the simulation.
package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/linelife/components"
	"github.com/pthm-cable/linelife/creature"
)

// DefaultParallelThreshold is the creature count below which updates stay on one goroutine.
const DefaultParallelThreshold = 256

// member is one live creature and its private stream, captured for a tick.
type member struct {
	c   *creature.Creature
	rng *rand.Rand
}

// CreatureSystem advances every live creature by one tick.
type CreatureSystem struct {
	filter    *ecs.Filter2[components.Body, components.Stream]
	threshold int
	pool      *workerPool
	batch     []member
}

// NewCreatureSystem creates the system. Populations of at least threshold creatures
// are updated in parallel chunks; threshold <= 0 uses DefaultParallelThreshold.
func NewCreatureSystem(w *ecs.World, threshold int) *CreatureSystem {
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}
	return &CreatureSystem{
		filter:    ecs.NewFilter2[components.Body, components.Stream](w),
		threshold: threshold,
		pool:      newWorkerPool(0),
		batch:     make([]member, 0, 256),
	}
}

// Update runs one tick of dt seconds in an arena of the given half-extents.
// Returns the number of creatures updated.
func (s *CreatureSystem) Update(dt float32, worldSize creature.Vec2) (int, error) {
	if err := creature.ValidateStep(dt, worldSize); err != nil {
		return 0, err
	}

	// Phase A: collect live creatures (single-threaded, no structural changes until Sweep)
	s.batch = s.batch[:0]
	query := s.filter.Query()
	for query.Next() {
		body, stream := query.Get()
		if body.Creature == nil || body.Creature.Dead() {
			continue
		}
		s.batch = append(s.batch, member{c: body.Creature, rng: stream.Rand})
	}

	n := len(s.batch)
	if n == 0 {
		return 0, nil
	}

	// Phase B: update, each creature touching only its own state and stream
	if n < s.threshold || s.pool.numWorkers < 2 {
		return n, updateChunk(s.batch, dt, worldSize)
	}
	return n, s.pool.run(s.batch, dt, worldSize)
}

// Close stops the worker goroutines.
func (s *CreatureSystem) Close() {
	s.pool.stop()
}

func updateChunk(batch []member, dt float32, worldSize creature.Vec2) error {
	for _, m := range batch {
		if err := m.c.Update(dt, worldSize, m.rng); err != nil {
			return err
		}
	}
	return nil
}
