// Package components defines ECS components for the simulation.
package components

import (
	"math/rand"

	"github.com/pthm-cable/linelife/creature"
)

// Body holds the creature model of an entity.
type Body struct {
	Creature *creature.Creature
}

// Stream is the private random source of one creature. Creatures never share
// a stream, so a population can be updated in any order or in parallel.
type Stream struct {
	Rand *rand.Rand
}

// NewStream seeds a stream for a new creature.
func NewStream(seed int64) Stream {
	return Stream{Rand: rand.New(rand.NewSource(seed))}
}
