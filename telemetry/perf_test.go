package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseUpdate)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseSweep)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTick <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.PhaseAvg[PhaseUpdate] <= 0 || stats.PhaseAvg[PhaseSweep] <= 0 {
		t.Errorf("phases not tracked: %v", stats.PhaseAvg)
	}
	if stats.PhaseAvg[PhaseSpawn] != 0 {
		t.Errorf("untouched phase has duration %v", stats.PhaseAvg[PhaseSpawn])
	}
	if stats.MinTick > stats.AvgTick || stats.AvgTick > stats.MaxTick {
		t.Errorf("min/avg/max out of order: %v %v %v", stats.MinTick, stats.AvgTick, stats.MaxTick)
	}
	if stats.P95Tick < stats.MinTick || stats.P95Tick > stats.MaxTick {
		t.Errorf("p95 %v outside [%v, %v]", stats.P95Tick, stats.MinTick, stats.MaxTick)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseUpdate)
		time.Sleep(10 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTick <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSpawn)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseUpdate)
		time.Sleep(500 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhasePct[PhaseUpdate] <= stats.PhasePct[PhaseSpawn] {
		t.Errorf("expected update (%v%%) > spawn (%v%%)", stats.PhasePct[PhaseUpdate], stats.PhasePct[PhaseSpawn])
	}
	if stats.PhasePct[PhaseUpdate] > 100 {
		t.Errorf("update share %v%% above 100", stats.PhasePct[PhaseUpdate])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()
	if stats.AvgTick != 0 || stats.TicksPerSecond != 0 {
		t.Errorf("empty collector: %+v", stats)
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("FPS = %v, want in (0, 70]", stats.FPS)
	}
}

func TestPhaseString(t *testing.T) {
	for ph, want := range map[Phase]string{
		PhaseUpdate:    "update",
		PhaseSweep:     "sweep",
		PhaseSpawn:     "spawn",
		PhaseTelemetry: "telemetry",
		Phase(42):      "unknown",
	} {
		if got := ph.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(ph), got, want)
		}
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	var s PerfStats
	s.AvgTick = 1500 * time.Microsecond
	s.PhasePct[PhaseSweep] = 12.5

	row := s.ToCSV(300)
	if row.WindowEnd != 300 || row.AvgTickUS != 1500 || row.SweepPct != 12.5 {
		t.Errorf("ToCSV = %+v", row)
	}
}
