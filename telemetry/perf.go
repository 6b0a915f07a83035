package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Phase is one timed part of a simulation tick.
type Phase int

// Phases in step order.
const (
	PhaseUpdate Phase = iota
	PhaseSweep
	PhaseSpawn
	PhaseTelemetry
	numPhases
)

var phaseNames = [numPhases]string{"update", "sweep", "spawn", "telemetry"}

func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		return "unknown"
	}
	return phaseNames[p]
}

const noPhase Phase = -1

type tickSample struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector tracks tick and phase timings over a rolling window.
type PerfCollector struct {
	samples []tickSample
	next    int
	count   int

	current    tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase

	lastFrame     time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		samples: make([]tickSample, windowSize),
		phase:   noPhase,
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.current = tickSample{}
	p.phase = noPhase
}

// StartPhase ends the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := time.Now()
	p.endPhase(now)
	p.phaseStart = now
	p.phase = phase
}

func (p *PerfCollector) endPhase(now time.Time) {
	if p.phase >= 0 && p.phase < numPhases {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
	p.phase = noPhase
}

// EndTick finishes the tick and records it in the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.endPhase(now)
	p.current.total = now.Sub(p.tickStart)

	p.samples[p.next] = p.current
	p.next = (p.next + 1) % len(p.samples)
	if p.count < len(p.samples) {
		p.count++
	}
}

// RecordFrame records the time since the previous frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frameDuration = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgTick time.Duration
	MinTick time.Duration
	MaxTick time.Duration
	P95Tick time.Duration

	// Average duration and share of tick time (0-100) per phase
	PhaseAvg [numPhases]time.Duration
	PhasePct [numPhases]float64

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats aggregates the samples in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{FrameDuration: p.frameDuration}
	if p.frameDuration > 0 {
		s.FPS = float64(time.Second) / float64(p.frameDuration)
	}
	if p.count == 0 {
		return s
	}

	ticks := make([]float64, p.count)
	var phaseSum [numPhases]time.Duration
	for i := 0; i < p.count; i++ {
		ticks[i] = float64(p.samples[i].total)
		for ph, d := range p.samples[i].phases {
			phaseSum[ph] += d
		}
	}
	sort.Float64s(ticks)

	avg := stat.Mean(ticks, nil)
	s.AvgTick = time.Duration(avg)
	s.MinTick = time.Duration(floats.Min(ticks))
	s.MaxTick = time.Duration(floats.Max(ticks))
	s.P95Tick = time.Duration(stat.Quantile(0.95, stat.Empirical, ticks, nil))

	for ph := range phaseSum {
		s.PhaseAvg[ph] = phaseSum[ph] / time.Duration(p.count)
		if avg > 0 {
			s.PhasePct[ph] = float64(s.PhaseAvg[ph]) / avg * 100
		}
	}
	if avg > 0 {
		s.TicksPerSecond = float64(time.Second) / avg
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("min_tick_us", s.MinTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Int64("p95_tick_us", s.P95Tick.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for ph := Phase(0); ph < numPhases; ph++ {
		if pct := s.PhasePct[ph]; pct > 0.1 {
			attrs = append(attrs, slog.Float64(ph.String()+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	slog.Info("perf", "window", s)
}

// PerfStatsCSV is a flat row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	P95TickUS    int64   `csv:"p95_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	UpdatePct    float64 `csv:"update_pct"`
	SweepPct     float64 `csv:"sweep_pct"`
	SpawnPct     float64 `csv:"spawn_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats into a perf.csv row.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTick.Microseconds(),
		MinTickUS:    s.MinTick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		P95TickUS:    s.P95Tick.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		UpdatePct:    s.PhasePct[PhaseUpdate],
		SweepPct:     s.PhasePct[PhaseSweep],
		SpawnPct:     s.PhasePct[PhaseSpawn],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
