package systems

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/linelife/components"
	"github.com/pthm-cable/linelife/creature"
)

func TestSpawnAssignsIdentities(t *testing.T) {
	l := NewLifecycle(ecs.NewWorld())
	for i := 0; i < 3; i++ {
		l.Spawn(creature.Default(creature.DefaultParams()), int64(i), int32(10*i))
	}

	if l.Alive() != 3 {
		t.Fatalf("Alive = %d, want 3", l.Alive())
	}

	seen := make(map[uint32]int32)
	l.Each(func(id components.Identity, _ *creature.Creature) {
		seen[id.ID] = id.BornTick
	})
	for id := uint32(0); id < 3; id++ {
		born, ok := seen[id]
		if !ok {
			t.Errorf("missing creature %d", id)
		}
		if born != int32(10*id) {
			t.Errorf("creature %d born at %d, want %d", id, born, 10*id)
		}
	}
}

func TestSweepRemovesOnlyDead(t *testing.T) {
	w := ecs.NewWorld()
	l := NewLifecycle(w)

	inside := creature.Default(creature.DefaultParams())
	l.Spawn(inside, 1, 0)

	outside := creature.Default(creature.DefaultParams())
	outside.Position = creature.V(0, -2000)
	l.Spawn(outside, 2, 0)

	s := NewCreatureSystem(w, 0)
	defer s.Close()
	if _, err := s.Update(0.01, testWorld); err != nil {
		t.Fatal(err)
	}

	removed := l.Sweep()
	if len(removed) != 1 {
		t.Fatalf("Sweep removed %d creatures, want 1", len(removed))
	}
	if removed[0].Identity.ID != 1 || removed[0].Creature != outside {
		t.Errorf("removed %+v, want the escaped creature", removed[0].Identity)
	}
	if l.Alive() != 1 {
		t.Errorf("Alive = %d, want 1", l.Alive())
	}
	if l.Lookup(1) != nil {
		t.Error("dead creature still reachable")
	}
	if l.Lookup(0) != inside {
		t.Error("live creature lost")
	}

	if again := l.Sweep(); len(again) != 0 {
		t.Errorf("second Sweep removed %d creatures", len(again))
	}
}

func TestReset(t *testing.T) {
	l := NewLifecycle(ecs.NewWorld())
	populate(t, l, 5, 3)

	l.Reset()
	if l.Alive() != 0 {
		t.Errorf("Alive = %d after Reset", l.Alive())
	}

	count := 0
	l.Each(func(components.Identity, *creature.Creature) { count++ })
	if count != 0 {
		t.Errorf("%d creatures left after Reset", count)
	}

	l.Spawn(creature.Default(creature.DefaultParams()), 1, 0)
	if l.Lookup(5) == nil {
		t.Error("IDs should continue after Reset")
	}
}

func TestPlaceKeepsBodyInside(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	const margin = 20
	for i := 0; i < 500; i++ {
		c := creature.Default(creature.DefaultParams())
		Place(c, testWorld, margin, rng)

		for _, s := range c.Segments() {
			for _, p := range []creature.Vec2{s.A, s.B} {
				wp := c.Position.Add(p)
				if wp.X < -testWorld.X+margin-1e-3 || wp.X > testWorld.X-margin+1e-3 ||
					wp.Y < -testWorld.Y+margin-1e-3 || wp.Y > testWorld.Y-margin+1e-3 {
					t.Fatalf("endpoint %v outside the margin", wp)
				}
			}
		}
	}
}

func TestPlaceTinyArena(t *testing.T) {
	c := creature.Default(creature.DefaultParams())
	Place(c, creature.V(5, 5), 0, rand.New(rand.NewSource(1)))
	if c.Position != (creature.Vec2{}) {
		t.Errorf("Position = %v, want center for an arena smaller than the body", c.Position)
	}
}
