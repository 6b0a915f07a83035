package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/linelife/creature"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Distribution
	}{
		{"empty", nil, Distribution{}},
		{"single", []float64{5}, Distribution{Mean: 5, P10: 5, P50: 5, P90: 5}},
		{"odd", []float64{1, 2, 3, 4, 5}, Distribution{Mean: 3, Std: math.Sqrt2, P10: 1, P50: 3, P90: 5}},
		{"unsorted", []float64{5, 1, 4, 2, 3}, Distribution{Mean: 3, Std: math.Sqrt2, P10: 1, P50: 3, P90: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			for _, f := range []struct {
				field     string
				got, want float64
			}{
				{"Mean", got.Mean, tt.want.Mean},
				{"Std", got.Std, tt.want.Std},
				{"P10", got.P10, tt.want.P10},
				{"P50", got.P50, tt.want.P50},
				{"P90", got.P90, tt.want.P90},
			} {
				if math.Abs(f.got-f.want) > 1e-9 {
					t.Errorf("%s = %v, want %v", f.field, f.got, f.want)
				}
			}
		})
	}
}

func TestSummarizeLeavesInputUntouched(t *testing.T) {
	values := []float64{3, 1, 2}
	Summarize(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered to %v", values)
	}
}

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
	if got := Mean([]float64{0.5, 1.5, 4}); math.Abs(got-2) > 1e-12 {
		t.Errorf("Mean = %v, want 2", got)
	}
}

func TestSampleOfDefaultCreature(t *testing.T) {
	c := creature.Default(creature.DefaultParams())
	c.Momentum = creature.V(3, 4)

	s := SampleOf(c)
	if math.Abs(s.Income-10) > 1e-4 {
		t.Errorf("Income = %v, want 10", s.Income)
	}
	if want := 20 + math.Sqrt(98); math.Abs(s.Requirement-want) > 1e-3 {
		t.Errorf("Requirement = %v, want %v", s.Requirement, want)
	}
	if math.Abs(s.Speed-5) > 1e-4 {
		t.Errorf("Speed = %v, want 5", s.Speed)
	}
	if math.Abs(s.Radius-10) > 1e-4 {
		t.Errorf("Radius = %v, want 10", s.Radius)
	}
}
