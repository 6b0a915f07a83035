package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/linelife/creature"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Creature.Params != creature.DefaultParams() {
		t.Errorf("creature params = %+v, want %+v", cfg.Creature.Params, creature.DefaultParams())
	}

	want := creature.DefaultBody()
	if len(cfg.Derived.Body) != len(want) {
		t.Fatalf("body has %d segments, want %d", len(cfg.Derived.Body), len(want))
	}
	for i := range want {
		if cfg.Derived.Body[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, cfg.Derived.Body[i], want[i])
		}
	}

	if cfg.Derived.WorldSize != creature.V(600, 375) {
		t.Errorf("world size = %v", cfg.Derived.WorldSize)
	}
	if cfg.Derived.DT32 <= 0 || cfg.Derived.MaxFrameDT32 <= 0 {
		t.Error("derived timesteps should be positive")
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := writeFile(t, `
world:
  half_width: 200
creature:
  force_scale: 40
  body:
    - {type: Move, a: {x: 0, y: 0}, b: {x: 0, y: 5}}
    - {type: defend, a: {x: 0, y: 0}, b: {x: 3, y: 4}}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.World.HalfWidth != 200 || cfg.World.HalfHeight != 375 {
		t.Errorf("world = %+v, want half_width overridden only", cfg.World)
	}
	if cfg.Creature.ForceScale != 40 || cfg.Creature.MoveRate != 10 {
		t.Errorf("params = %+v, want force_scale overridden only", cfg.Creature.Params)
	}
	if len(cfg.Derived.Body) != 2 || cfg.Derived.Body[1].Type != creature.Defend {
		t.Errorf("body = %+v, want the file's two segments", cfg.Derived.Body)
	}

	c, err := cfg.NewCreature()
	if err != nil {
		t.Fatalf("NewCreature: %v", err)
	}
	if got := c.SegmentLengths().Total; got != 10 {
		t.Errorf("total length = %v, want 10", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown segment type", "creature:\n  body:\n    - {type: fin, a: {x: 0, y: 0}, b: {x: 1, y: 0}}\n"},
		{"zero length body", "creature:\n  body:\n    - {type: move, a: {x: 1, y: 1}, b: {x: 1, y: 1}}\n"},
		{"empty body", "creature:\n  body: []\n"},
		{"bad world", "world:\n  half_height: 0\n"},
		{"bad dt", "physics:\n  dt: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Population.Initial = 7

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot: %v", err)
	}
	if loaded.Population.Initial != 7 {
		t.Errorf("initial = %d, want 7", loaded.Population.Initial)
	}
	if len(loaded.Derived.Body) != len(cfg.Derived.Body) {
		t.Errorf("body length changed through snapshot")
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}
