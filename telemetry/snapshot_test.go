package telemetry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/linelife/components"
	"github.com/pthm-cable/linelife/creature"
	"github.com/pthm-cable/linelife/systems"
)

var arena = creature.V(600, 375)

func TestSnapshotRoundTrip(t *testing.T) {
	params := creature.DefaultParams()
	l := systems.NewLifecycle(ecs.NewWorld())

	a := creature.Default(params)
	a.Position = creature.V(10, -20)
	a.Momentum = creature.V(3, 4)
	a.Energy = 7
	l.Spawn(a, 1, 0)

	b, err := creature.New([]creature.Segment{
		{A: creature.V(0, 0), B: creature.V(5, 0), Type: creature.Move},
		{A: creature.V(0, 0), B: creature.V(0, -5), Type: creature.Defend},
	}, params)
	if err != nil {
		t.Fatal(err)
	}
	b.Position = creature.V(-100, 50)
	l.Spawn(b, 2, 30)

	escaped := creature.Default(params)
	escaped.Position = creature.V(5000, 0)
	l.Spawn(escaped, 3, 0)

	// kill the escaped one without moving the others
	if err := escaped.Update(0, arena, idleSource{}); err != nil {
		t.Fatal(err)
	}

	snap := Capture(l, 120, 42, arena, params)
	if len(snap.Creatures) != 2 {
		t.Fatalf("captured %d creatures, want 2 live ones", len(snap.Creatures))
	}

	path, err := SaveSnapshot(snap, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "snapshot_120.json" {
		t.Errorf("saved as %s", filepath.Base(path))
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Tick != 120 || loaded.Seed != 42 || loaded.WorldSize() != arena || loaded.Params != params {
		t.Errorf("header mismatch: %+v", loaded)
	}

	restored := systems.NewLifecycle(ecs.NewWorld())
	if err := loaded.Restore(restored); err != nil {
		t.Fatal(err)
	}
	if restored.Alive() != 2 {
		t.Fatalf("restored %d creatures, want 2", restored.Alive())
	}

	ra := restored.Lookup(0)
	if ra == nil {
		t.Fatal("creature 0 missing")
	}
	if ra.Position != a.Position || ra.Momentum != a.Momentum || ra.Energy != a.Energy {
		t.Errorf("creature 0 state = %v %v %v", ra.Position, ra.Momentum, ra.Energy)
	}
	if ra.NumSegments() != a.NumSegments() || ra.Radius() != a.Radius() {
		t.Error("creature 0 body changed")
	}

	rb := restored.Lookup(1)
	if rb == nil {
		t.Fatal("creature 1 missing")
	}
	segs := rb.Segments()
	if len(segs) != 2 || segs[0].Type != creature.Move || segs[1].Type != creature.Defend {
		t.Errorf("creature 1 segments = %+v", segs)
	}
	restored.Each(func(id components.Identity, _ *creature.Creature) {
		if id.ID == 1 && id.BornTick != 30 {
			t.Errorf("creature 1 born at %d, want 30", id.BornTick)
		}
	})

	// new spawns continue after the highest restored ID
	restored.Spawn(creature.Default(params), 9, 121)
	if restored.Lookup(2) == nil {
		t.Error("next spawn should take ID 2")
	}
}

func TestLoadSnapshotErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnapshot(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(bad); err == nil {
		t.Error("expected error for malformed JSON")
	}

	old := filepath.Join(dir, "old.json")
	if err := os.WriteFile(old, []byte(`{"version": 99}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(old); !errors.Is(err, ErrSnapshotVersion) {
		t.Errorf("error = %v, want ErrSnapshotVersion", err)
	}
}

func TestRestoreRejectsInvalidBody(t *testing.T) {
	snap := &Snapshot{
		Version: SnapshotVersion,
		Params:  creature.DefaultParams(),
		Creatures: []CreatureState{
			{ID: 4},
		},
	}
	err := snap.Restore(systems.NewLifecycle(ecs.NewWorld()))
	if !errors.Is(err, creature.ErrInvalidCreature) {
		t.Errorf("error = %v, want ErrInvalidCreature", err)
	}
}

type idleSource struct{}

func (idleSource) Float32() float32     { return 0.99 }
func (idleSource) NormFloat64() float64 { return 0 }
