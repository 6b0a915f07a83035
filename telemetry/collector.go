package telemetry

import "github.com/pthm-cable/linelife/creature"

// CreatureSample is the per-creature state sampled at window end.
type CreatureSample struct {
	Income      float64
	Requirement float64
	Speed       float64
	Radius      float64
}

// SampleOf reads the telemetry sample for a creature.
func SampleOf(c *creature.Creature) CreatureSample {
	return CreatureSample{
		Income:      float64(c.EnergyIncome()),
		Requirement: float64(c.EnergyRequirement()),
		Speed:       float64(c.Momentum.Length()),
		Radius:      float64(c.Radius()),
	}
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	// Event counters for current window
	spawns int
	deaths int

	// scratch for Flush
	income, requirement, balance, speed, radius []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordSpawn records a spawn event.
func (c *Collector) RecordSpawn() {
	c.spawns++
}

// RecordDeath records a death event.
func (c *Collector) RecordDeath() {
	c.deaths++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from the samples of the creatures alive at
// currentTick and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, samples []CreatureSample) WindowStats {
	c.income = c.income[:0]
	c.requirement = c.requirement[:0]
	c.balance = c.balance[:0]
	c.speed = c.speed[:0]
	c.radius = c.radius[:0]
	for _, s := range samples {
		c.income = append(c.income, s.Income)
		c.requirement = append(c.requirement, s.Requirement)
		c.balance = append(c.balance, s.Income-s.Requirement)
		c.speed = append(c.speed, s.Speed)
		c.radius = append(c.radius, s.Radius)
	}

	balance := Summarize(c.balance)
	speed := Summarize(c.speed)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		Creatures: len(samples),
		Spawns:    c.spawns,
		Deaths:    c.deaths,

		IncomeMean:      Mean(c.income),
		RequirementMean: Mean(c.requirement),
		BalanceMean:     balance.Mean,
		BalanceP10:      balance.P10,
		BalanceP50:      balance.P50,
		BalanceP90:      balance.P90,

		SpeedMean:  speed.Mean,
		SpeedStd:   speed.Std,
		SpeedP90:   speed.P90,
		RadiusMean: Mean(c.radius),
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.spawns = 0
	c.deaths = 0

	return stats
}

// Reset restarts the window at tick and clears counters.
func (c *Collector) Reset(tick int32) {
	c.windowStartTick = tick
	c.spawns = 0
	c.deaths = 0
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
