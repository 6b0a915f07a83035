// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/linelife/creature"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Creature   CreatureConfig   `yaml:"creature"`
	Population PopulationConfig `yaml:"population"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the arena half-extents. The arena is centered on the origin.
type WorldConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// PhysicsConfig holds simulation stepping parameters.
type PhysicsConfig struct {
	DT                float64 `yaml:"dt"`                 // fixed tick for headless runs
	MaxFrameDT        float64 `yaml:"max_frame_dt"`       // cap on the variable graphical step
	ParallelThreshold int     `yaml:"parallel_threshold"` // creature count that enables chunked updates
}

// CreatureConfig holds locomotion constants and the founder body plan.
type CreatureConfig struct {
	creature.Params `yaml:",inline"`
	Body            []SegmentConfig `yaml:"body"`
}

// SegmentConfig describes one body segment in creature-local space.
type SegmentConfig struct {
	Type creature.SegmentType `yaml:"type"`
	A    PointConfig          `yaml:"a"`
	B    PointConfig          `yaml:"b"`
}

// PointConfig is a 2D point.
type PointConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// PopulationConfig holds population management parameters.
type PopulationConfig struct {
	Initial      int     `yaml:"initial"`
	RespawnBelow int     `yaml:"respawn_below"` // top up to Initial when fewer are alive
	SpawnMargin  float64 `yaml:"spawn_margin"`  // gap kept between a new body and the walls
}

// TelemetryConfig holds stats and perf window parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // simulation seconds per stats window
	PerfWindow  int     `yaml:"perf_window"`  // ticks per perf rolling window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32         float32            // Physics.DT as float32
	MaxFrameDT32 float32            // Physics.MaxFrameDT as float32
	WorldSize    creature.Vec2      // arena half-extents
	Body         []creature.Segment // founder body plan
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file; a body list replaces the default body.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	if c.World.HalfWidth <= 0 || c.World.HalfHeight <= 0 {
		return fmt.Errorf("world half-extents must be positive, got %vx%v", c.World.HalfWidth, c.World.HalfHeight)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT)
	}
	if c.Population.Initial < 0 || c.Population.RespawnBelow < 0 {
		return fmt.Errorf("population counts must not be negative")
	}
	if len(c.Creature.Body) == 0 {
		return fmt.Errorf("creature.body must list at least one segment")
	}
	if _, err := creature.New(c.body(), c.Creature.Params); err != nil {
		return fmt.Errorf("creature.body: %w", err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)

	maxFrame := c.Physics.MaxFrameDT
	if maxFrame <= 0 {
		maxFrame = c.Physics.DT * 4
	}
	c.Derived.MaxFrameDT32 = float32(maxFrame)

	c.Derived.WorldSize = creature.V(float32(c.World.HalfWidth), float32(c.World.HalfHeight))
	c.Derived.Body = c.body()
}

func (c *Config) body() []creature.Segment {
	body := make([]creature.Segment, len(c.Creature.Body))
	for i, s := range c.Creature.Body {
		body[i] = creature.Segment{
			A:    creature.V(s.A.X, s.A.Y),
			B:    creature.V(s.B.X, s.B.Y),
			Type: s.Type,
		}
	}
	return body
}

// NewCreature builds a founder creature from the configured body plan.
func (c *Config) NewCreature() (*creature.Creature, error) {
	return creature.New(c.Derived.Body, c.Creature.Params)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
