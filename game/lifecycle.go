package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/linelife/systems"
)

// burstParticles is the number of particles emitted when a creature dies.
const burstParticles = 14

// spawnInitialPopulation creates the starting creatures.
func (g *Game) spawnInitialPopulation() error {
	for i := 0; i < g.cfg.Population.Initial; i++ {
		if err := g.spawnCreature(); err != nil {
			return err
		}
	}
	slog.Info("spawned population", "count", g.cfg.Population.Initial, "tick", g.tick)
	return nil
}

// spawnCreature places a founder at a random position inside the arena.
func (g *Game) spawnCreature() error {
	c, err := g.cfg.NewCreature()
	if err != nil {
		return fmt.Errorf("spawning creature: %w", err)
	}
	systems.Place(c, g.worldSize, float32(g.cfg.Population.SpawnMargin), g.rng)
	g.life.Spawn(c, g.rng.Int63(), g.tick)
	g.collector.RecordSpawn()
	return nil
}

// respawnIfNeeded tops the population back up to the initial count once it
// falls below the respawn threshold.
func (g *Game) respawnIfNeeded() error {
	if g.life.Alive() >= g.cfg.Population.RespawnBelow {
		return nil
	}
	n := g.cfg.Population.Initial - g.life.Alive()
	for i := 0; i < n; i++ {
		if err := g.spawnCreature(); err != nil {
			return err
		}
	}
	if n > 0 {
		slog.Debug("respawned", "count", n, "tick", g.tick)
	}
	return nil
}

// cleanupDead removes creatures that escaped the arena.
func (g *Game) cleanupDead() {
	for _, r := range g.life.Sweep() {
		g.collector.RecordDeath()
		g.totalDeaths++

		if g.particles != nil {
			g.particles.Burst(r.Creature, burstParticles)
		}
		if g.hasSelected && g.selected == r.Identity.ID {
			g.hasSelected = false
		}

		slog.Debug("creature died",
			"id", r.Identity.ID,
			"age_ticks", g.tick-r.Identity.BornTick,
			"x", r.Creature.Position.X,
			"y", r.Creature.Position.Y,
		)
	}
}

// reset clears the arena and spawns a fresh population.
func (g *Game) reset() error {
	g.life.Reset()
	g.hasSelected = false
	if g.particles != nil {
		g.particles.Clear()
	}
	g.collector.Reset(g.tick)
	return g.spawnInitialPopulation()
}
