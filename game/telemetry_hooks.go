package game

import (
	"log/slog"

	"github.com/pthm-cable/linelife/components"
	"github.com/pthm-cable/linelife/creature"
	"github.com/pthm-cable/linelife/telemetry"
)

// defaultSnapshotDir receives snapshots when no output directory is set.
const defaultSnapshotDir = "snapshots"

// flushTelemetry closes the stats window once it is due.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	g.samples = g.samples[:0]
	g.life.Each(func(_ components.Identity, c *creature.Creature) {
		if c != nil && !c.Dead() {
			g.samples = append(g.samples, telemetry.SampleOf(c))
		}
	})

	stats := g.collector.Flush(g.tick, g.samples)
	perfStats := g.perf.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// SaveSnapshot writes the live population to the output directory, or to
// ./snapshots when output is disabled.
func (g *Game) SaveSnapshot() (string, error) {
	snap := telemetry.Capture(g.life, g.tick, g.rngSeed, g.worldSize, g.cfg.Creature.Params)

	var (
		path string
		err  error
	)
	if g.output != nil {
		path, err = g.output.WriteSnapshot(snap)
	} else {
		path, err = telemetry.SaveSnapshot(snap, defaultSnapshotDir)
	}
	if err != nil {
		return "", err
	}

	slog.Info("snapshot saved", "path", path, "tick", g.tick, "creatures", len(snap.Creatures))
	return path, nil
}

// loadSnapshot replaces the population with the one stored at path.
func (g *Game) loadSnapshot(path string) error {
	snap, err := telemetry.LoadSnapshot(path)
	if err != nil {
		return err
	}

	if ws := snap.WorldSize(); ws != g.worldSize {
		slog.Warn("snapshot arena differs from config, using snapshot arena",
			"snapshot_half_width", ws.X, "snapshot_half_height", ws.Y,
			"config_half_width", g.worldSize.X, "config_half_height", g.worldSize.Y,
		)
		if err := creature.ValidateStep(0, ws); err != nil {
			return err
		}
		g.worldSize = ws
	}

	g.life.Reset()
	if err := snap.Restore(g.life); err != nil {
		return err
	}
	g.tick = snap.Tick
	g.simTime = float32(snap.Tick) * g.cfg.Derived.DT32
	g.collector.Reset(g.tick)

	slog.Info("snapshot restored", "path", path, "tick", g.tick, "creatures", g.life.Alive())
	return nil
}
