package main

import (
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/linelife/config"
	"github.com/pthm-cable/linelife/game"
	"github.com/pthm-cable/linelife/telemetry"
)

// Fitness weights.
const (
	speedWeight   = 1.0
	warmupWindows = 1 // skip the first window while the population settles
)

// FitnessEvaluator runs headless simulations and scores a parameter vector.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	baseConfig  *config.Config
	statsWindow float64
	targetSpeed float64

	mu   sync.Mutex
	last Score
}

// Score breaks a fitness value into its parts.
type Score struct {
	Fitness   float64
	DeathRate float64 // deaths per creature per simulated minute
	MeanSpeed float64 // world units per second
}

// NewFitnessEvaluator creates an evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config, targetSpeed float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 5.0,
		targetSpeed: targetSpeed,
	}
}

// Last returns the score of the most recent evaluation.
func (fe *FitnessEvaluator) Last() Score {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// Evaluate computes fitness for raw parameter values (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	scores := make([]Score, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			windows, err := fe.runSimulation(x, s)
			if err != nil {
				slog.Warn("evaluation run failed", "seed", s, "error", err)
				scores[idx] = Score{Fitness: math.Inf(1)}
				return
			}
			scores[idx] = fe.score(windows)
		}(i, seed)
	}
	wg.Wait()

	fitness := make([]float64, len(scores))
	deaths := make([]float64, len(scores))
	speeds := make([]float64, len(scores))
	for i, s := range scores {
		fitness[i], deaths[i], speeds[i] = s.Fitness, s.DeathRate, s.MeanSpeed
	}
	avg := Score{
		Fitness:   stat.Mean(fitness, nil),
		DeathRate: stat.Mean(deaths, nil),
		MeanSpeed: stat.Mean(speeds, nil),
	}

	fe.mu.Lock()
	fe.last = avg
	fe.mu.Unlock()

	return avg.Fitness
}

// runSimulation executes one headless run and returns its stats windows.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) ([]telemetry.WindowStats, error) {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	var windows []telemetry.WindowStats
	g, err := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StatsWindowSec: fe.statsWindow,
		StepsPerUpdate: 1,
		Config:         cfg,
		StatsCallback: func(stats telemetry.WindowStats) {
			windows = append(windows, stats)
		},
	})
	if err != nil {
		return nil, err
	}
	defer g.Unload()

	for g.Tick() < fe.maxTicks {
		if err := g.UpdateHeadless(); err != nil {
			return windows, err
		}
	}
	return windows, nil
}

// copyConfig returns a copy of the base config that a run may modify.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// score combines the death rate with the squared relative error between the
// mean speed and the target speed.
func (fe *FitnessEvaluator) score(windows []telemetry.WindowStats) Score {
	if len(windows) <= warmupWindows {
		return Score{Fitness: math.Inf(1)}
	}
	valid := windows[warmupWindows:]

	deathRates := make([]float64, 0, len(valid))
	speeds := make([]float64, 0, len(valid))
	for _, w := range valid {
		if w.Creatures == 0 {
			continue
		}
		minutes := fe.statsWindow / 60
		deathRates = append(deathRates, float64(w.Deaths)/float64(w.Creatures)/minutes)
		speeds = append(speeds, w.SpeedMean)
	}
	if len(deathRates) == 0 {
		return Score{Fitness: math.Inf(1)}
	}

	s := Score{
		DeathRate: floats.Sum(deathRates) / float64(len(deathRates)),
		MeanSpeed: stat.Mean(speeds, nil),
	}
	speedErr := 0.0
	if fe.targetSpeed > 0 {
		speedErr = (s.MeanSpeed - fe.targetSpeed) / fe.targetSpeed
	}
	s.Fitness = s.DeathRate + speedWeight*speedErr*speedErr
	return s
}
