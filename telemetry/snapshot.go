package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pthm-cable/linelife/components"
	"github.com/pthm-cable/linelife/creature"
	"github.com/pthm-cable/linelife/systems"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// ErrSnapshotVersion is returned when loading a snapshot written by another format version.
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// Snapshot holds the population state at one tick.
type Snapshot struct {
	Version int   `json:"version"`
	Seed    int64 `json:"seed"`
	Tick    int32 `json:"tick"`

	// Arena half-extents
	HalfWidth  float32 `json:"half_width"`
	HalfHeight float32 `json:"half_height"`

	Params    creature.Params `json:"params"`
	Creatures []CreatureState `json:"creatures"`
}

// CreatureState holds one creature's state.
type CreatureState struct {
	ID       uint32         `json:"id"`
	BornTick int32          `json:"born_tick"`
	Position [2]float32     `json:"position"`
	Momentum [2]float32     `json:"momentum"`
	Energy   float32        `json:"energy"`
	Segments []SegmentState `json:"segments"`
}

// SegmentState is a body segment in creature-local coordinates.
type SegmentState struct {
	Type creature.SegmentType `json:"type"`
	A    [2]float32           `json:"a"`
	B    [2]float32           `json:"b"`
}

func pair(v creature.Vec2) [2]float32   { return [2]float32{v.X, v.Y} }
func unpair(p [2]float32) creature.Vec2 { return creature.V(p[0], p[1]) }

// Capture records every live creature in l. Dead creatures awaiting a sweep are skipped.
func Capture(l *systems.Lifecycle, tick int32, seed int64, worldSize creature.Vec2, params creature.Params) *Snapshot {
	snap := &Snapshot{
		Version:    SnapshotVersion,
		Seed:       seed,
		Tick:       tick,
		HalfWidth:  worldSize.X,
		HalfHeight: worldSize.Y,
		Params:     params,
	}

	l.Each(func(id components.Identity, c *creature.Creature) {
		if c == nil || c.Dead() {
			return
		}
		segs := c.Segments()
		state := CreatureState{
			ID:       id.ID,
			BornTick: id.BornTick,
			Position: pair(c.Position),
			Momentum: pair(c.Momentum),
			Energy:   c.Energy,
			Segments: make([]SegmentState, len(segs)),
		}
		for i, s := range segs {
			state.Segments[i] = SegmentState{Type: s.Type, A: pair(s.A), B: pair(s.B)}
		}
		snap.Creatures = append(snap.Creatures, state)
	})

	return snap
}

// WorldSize returns the arena half-extents recorded in the snapshot.
func (s *Snapshot) WorldSize() creature.Vec2 {
	return creature.V(s.HalfWidth, s.HalfHeight)
}

// Restore spawns every creature of the snapshot into l, keeping identities.
// Streams are reseeded from the snapshot seed, so motion after a restore is
// reproducible but differs from the run that wrote it.
func (s *Snapshot) Restore(l *systems.Lifecycle) error {
	for i, cs := range s.Creatures {
		segs := make([]creature.Segment, len(cs.Segments))
		for j, ss := range cs.Segments {
			segs[j] = creature.Segment{A: unpair(ss.A), B: unpair(ss.B), Type: ss.Type}
		}

		c, err := creature.New(segs, s.Params)
		if err != nil {
			return fmt.Errorf("creature %d: %w", cs.ID, err)
		}
		c.Position = unpair(cs.Position)
		c.Momentum = unpair(cs.Momentum)
		c.Energy = cs.Energy

		seed := s.Seed ^ int64(s.Tick)<<32 ^ int64(i)
		l.Restore(c, components.Identity{ID: cs.ID, BornTick: cs.BornTick}, seed)
	}
	return nil
}

// SaveSnapshot writes a snapshot to dir.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("snapshot_%d.json", snapshot.Tick))

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, snapshot.Version)
	}

	return &snapshot, nil
}
