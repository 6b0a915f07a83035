// Package game hosts the simulation: it owns the ECS world, steps every
// creature each tick, keeps the population topped up and draws the arena.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/linelife/camera"
	"github.com/pthm-cable/linelife/config"
	"github.com/pthm-cable/linelife/creature"
	"github.com/pthm-cable/linelife/inspector"
	"github.com/pthm-cable/linelife/renderer"
	"github.com/pthm-cable/linelife/systems"
	"github.com/pthm-cable/linelife/telemetry"
	"github.com/pthm-cable/linelife/ui"
)

// MaxSpeed is the largest number of simulation steps per frame.
const MaxSpeed = 20

// Options configures a new game.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 uses config
	OutputDir      string  // empty disables CSV output
	SnapshotPath   string  // restore this snapshot instead of spawning a population
	Headless       bool
	StepsPerUpdate int

	// Config overrides the global config (used by the tuner).
	Config *config.Config
	// StatsCallback receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete game state.
type Game struct {
	cfg *config.Config

	world   *ecs.World
	rng     *rand.Rand
	rngSeed int64

	life      *systems.Lifecycle
	creatures *systems.CreatureSystem
	worldSize creature.Vec2

	// Rendering and input (nil when headless)
	camera         *camera.Camera
	lines          *renderer.LineRenderer
	particles      *renderer.Particles
	hud            *ui.HUD
	controls       *ui.Controls
	inspectorPanel *ui.InspectorPanel
	picker         inspector.Picker
	selected       uint32
	hasSelected    bool
	panelHeight    int32

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
	samples       []telemetry.CreatureSample

	// State
	tick           int32
	simTime        float32
	paused         bool
	stepsPerUpdate int
	totalDeaths    int
	headless       bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game. Unless opts.Config is set, config.Init
// must have been called. Graphical games must be created after the raylib window.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:            cfg,
		world:          world,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		rngSeed:        opts.Seed,
		life:           systems.NewLifecycle(world),
		creatures:      systems.NewCreatureSystem(world, cfg.Physics.ParallelThreshold),
		worldSize:      cfg.Derived.WorldSize,
		collector:      telemetry.NewCollector(statsWindow, cfg.Derived.DT32),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:       opts.LogStats,
		statsCallback:  opts.StatsCallback,
		stepsPerUpdate: steps,
		headless:       opts.Headless,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		g.creatures.Close()
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		g.Unload()
		return nil, err
	}

	if opts.SnapshotPath != "" {
		if err := g.loadSnapshot(opts.SnapshotPath); err != nil {
			g.Unload()
			return nil, err
		}
	} else if err := g.spawnInitialPopulation(); err != nil {
		g.Unload()
		return nil, err
	}

	if !opts.Headless {
		g.camera = camera.New(g.screenWidth, g.screenHeight, g.worldSize.X, g.worldSize.Y)
		g.lines = renderer.NewLineRenderer(1.5)
		g.particles = renderer.NewParticles(opts.Seed)
		g.hud = ui.NewHUD()
		g.controls = ui.NewControls(180, MaxSpeed)
		g.inspectorPanel = ui.NewInspectorPanel(inspectorWidth)
	}

	return g, nil
}

// Update advances the graphical game by one frame.
func (g *Game) Update() {
	g.handleInput()

	dt := min(rl.GetFrameTime(), g.cfg.Derived.MaxFrameDT32)
	if !g.paused {
		for i := 0; i < g.stepsPerUpdate; i++ {
			if err := g.step(dt); err != nil {
				slog.Error("simulation step failed, pausing", "error", err)
				g.paused = true
				break
			}
		}
	}
	g.particles.Update(dt)
}

// UpdateHeadless runs StepsPerUpdate fixed-dt ticks without graphics.
func (g *Game) UpdateHeadless() error {
	for i := 0; i < g.stepsPerUpdate; i++ {
		if err := g.step(g.cfg.Derived.DT32); err != nil {
			return err
		}
	}
	return nil
}

// step runs one simulation tick of dt seconds.
func (g *Game) step(dt float32) error {
	g.perf.StartTick()
	defer g.perf.EndTick()

	g.perf.StartPhase(telemetry.PhaseUpdate)
	if _, err := g.creatures.Update(dt, g.worldSize); err != nil {
		return fmt.Errorf("tick %d: %w", g.tick, err)
	}

	g.perf.StartPhase(telemetry.PhaseSweep)
	g.cleanupDead()

	g.perf.StartPhase(telemetry.PhaseSpawn)
	if err := g.respawnIfNeeded(); err != nil {
		return err
	}

	g.tick++
	g.simTime += dt

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	return nil
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int32 {
	return g.tick
}

// Alive returns the number of creatures in the world.
func (g *Game) Alive() int {
	return g.life.Alive()
}

// Unload stops the worker pool and closes output files.
func (g *Game) Unload() {
	g.creatures.Close()
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
