package main

import (
	"github.com/pthm-cable/linelife/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of tunable locomotion parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "move_rate", Path: "creature.move_rate", Min: 1, Max: 30, Default: 10},
			{Name: "force_scale", Path: "creature.force_scale", Min: 10, Max: 400, Default: 100},
			{Name: "bounce_damping", Path: "creature.bounce_damping", Min: 0.05, Max: 1, Default: 0.5},
			{Name: "momentum_half_life", Path: "creature.momentum_half_life", Min: 0.1, Max: 5, Default: 1},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize maps raw values onto [0,1].
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return out
}

// Denormalize maps [0,1] values back to raw values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return out
}

// Clamp keeps every value within its bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return out
}

// ApplyToConfig writes clamped values into cfg. Order matches Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)
	p := &cfg.Creature.Params
	p.MoveRate = float32(c[0])
	p.ForceScale = float32(c[1])
	p.BounceDamping = float32(c[2])
	p.MomentumHalfLife = float32(c[3])
}

// ExtractFromConfig reads the current values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	p := cfg.Creature.Params
	return []float64{
		float64(p.MoveRate),
		float64(p.ForceScale),
		float64(p.BounceDamping),
		float64(p.MomentumHalfLife),
	}
}
