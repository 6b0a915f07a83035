package systems

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/linelife/components"
	"github.com/pthm-cable/linelife/creature"
)

var testWorld = creature.V(600, 375)

type state struct {
	pos, mom creature.Vec2
	dead     bool
}

// populate spawns n default creatures at seeded positions.
func populate(t *testing.T, l *Lifecycle, n int, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		c := creature.Default(creature.DefaultParams())
		Place(c, testWorld, 5, rng)
		l.Spawn(c, rng.Int63(), 0)
	}
}

func collect(l *Lifecycle) map[uint32]state {
	out := make(map[uint32]state)
	l.Each(func(id components.Identity, c *creature.Creature) {
		out[id.ID] = state{pos: c.Position, mom: c.Momentum, dead: c.Dead()}
	})
	return out
}

func TestParallelUpdateMatchesSerial(t *testing.T) {
	const n = 300

	serialWorld := ecs.NewWorld()
	serialLife := NewLifecycle(serialWorld)
	populate(t, serialLife, n, 99)
	serial := NewCreatureSystem(serialWorld, n+1)
	defer serial.Close()

	parallelWorld := ecs.NewWorld()
	parallelLife := NewLifecycle(parallelWorld)
	populate(t, parallelLife, n, 99)
	parallel := NewCreatureSystem(parallelWorld, 1)
	parallel.pool = newWorkerPool(4)
	defer parallel.Close()

	for tick := 0; tick < 300; tick++ {
		if _, err := serial.Update(1.0/60, testWorld); err != nil {
			t.Fatal(err)
		}
		if _, err := parallel.Update(1.0/60, testWorld); err != nil {
			t.Fatal(err)
		}
	}

	want := collect(serialLife)
	got := collect(parallelLife)
	if len(got) != len(want) {
		t.Fatalf("got %d creatures, want %d", len(got), len(want))
	}
	moved := 0
	for id, w := range want {
		if got[id] != w {
			t.Fatalf("creature %d: parallel %+v, serial %+v", id, got[id], w)
		}
		if w.mom != (creature.Vec2{}) {
			moved++
		}
	}
	if moved == 0 {
		t.Error("no creature moved in 300 ticks")
	}
}

func TestUpdateSkipsDeadCreatures(t *testing.T) {
	w := ecs.NewWorld()
	l := NewLifecycle(w)
	populate(t, l, 3, 1)

	escaped := creature.Default(creature.DefaultParams())
	escaped.Position = creature.V(1000, 0)
	l.Spawn(escaped, 5, 0)

	s := NewCreatureSystem(w, 0)
	defer s.Close()

	n, err := s.Update(0.01, testWorld)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("first update touched %d creatures, want 4", n)
	}
	if !escaped.Dead() {
		t.Fatal("escaped creature should be dead")
	}

	n, err = s.Update(0.01, testWorld)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("second update touched %d creatures, want 3", n)
	}
}

func TestUpdateRejectsInvalidStep(t *testing.T) {
	w := ecs.NewWorld()
	l := NewLifecycle(w)
	populate(t, l, 2, 1)
	before := collect(l)

	s := NewCreatureSystem(w, 0)
	defer s.Close()

	if _, err := s.Update(-1, testWorld); !errors.Is(err, creature.ErrInvalidTimestep) {
		t.Errorf("error = %v, want ErrInvalidTimestep", err)
	}
	if _, err := s.Update(0.1, creature.V(0, 10)); !errors.Is(err, creature.ErrInvalidWorld) {
		t.Errorf("error = %v, want ErrInvalidWorld", err)
	}

	after := collect(l)
	for id, b := range before {
		if after[id] != b {
			t.Errorf("creature %d changed after rejected update", id)
		}
	}
}

func TestUpdateEmptyWorld(t *testing.T) {
	s := NewCreatureSystem(ecs.NewWorld(), 0)
	defer s.Close()

	n, err := s.Update(0.1, testWorld)
	if err != nil || n != 0 {
		t.Errorf("Update on empty world = (%d, %v), want (0, nil)", n, err)
	}
}
