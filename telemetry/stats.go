// Package telemetry provides population stats windows, performance timing,
// CSV output and population snapshots.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Creatures int `csv:"creatures"`

	// Events during window
	Spawns int `csv:"spawns"`
	Deaths int `csv:"deaths"`

	// Energy accounting (sampled at window end)
	IncomeMean      float64 `csv:"income_mean"`
	RequirementMean float64 `csv:"requirement_mean"`
	BalanceMean     float64 `csv:"balance_mean"`
	BalanceP10      float64 `csv:"balance_p10"`
	BalanceP50      float64 `csv:"balance_p50"`
	BalanceP90      float64 `csv:"balance_p90"`

	// Motion (sampled at window end)
	SpeedMean  float64 `csv:"speed_mean"`
	SpeedStd   float64 `csv:"speed_std"`
	SpeedP90   float64 `csv:"speed_p90"`
	RadiusMean float64 `csv:"radius_mean"`
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Summarize computes mean, standard deviation and percentiles of values.
// Returns the zero Distribution for an empty sample. values is not modified.
func Summarize(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.PopMeanStdDev(sorted, nil)
	return Distribution{
		Mean: mean,
		Std:  std,
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
}

// Mean returns the arithmetic mean of values, or 0 for an empty sample.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values) / float64(len(values))
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("creatures", s.Creatures),
		slog.Int("spawns", s.Spawns),
		slog.Int("deaths", s.Deaths),
		slog.Float64("income_mean", s.IncomeMean),
		slog.Float64("requirement_mean", s.RequirementMean),
		slog.Float64("balance_mean", s.BalanceMean),
		slog.Float64("balance_p10", s.BalanceP10),
		slog.Float64("balance_p50", s.BalanceP50),
		slog.Float64("balance_p90", s.BalanceP90),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("radius_mean", s.RadiusMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
