// Locomotion preview tool - interactive tuning of creature movement with sliders.
//
// Usage: go run ./cmd/locomotionpreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/linelife/camera"
	"github.com/pthm-cable/linelife/creature"
	"github.com/pthm-cable/linelife/renderer"
	"github.com/pthm-cable/linelife/ui"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30

	arenaHalf  = 150
	numSubject = 6
	trailLen   = 240
)

var (
	backgroundColor = rl.Color{R: 12, G: 14, B: 18, A: 255}
	arenaColor      = rl.Color{R: 70, G: 80, B: 95, A: 255}
	trailColor      = rl.Color{R: 200, G: 200, B: 200, A: 90}
)

// preview holds the creatures under test.
type preview struct {
	params    creature.Params
	seed      int64
	rng       *rand.Rand
	subjects  []*creature.Creature
	trail     []creature.Vec2
	escapes   int
	simTime   float32
	worldSize creature.Vec2
}

func newPreview(params creature.Params, seed int64) *preview {
	p := &preview{params: params, worldSize: creature.V(arenaHalf, arenaHalf)}
	p.reset(seed)
	return p
}

// reset respawns every subject at the center with a fresh stream.
func (p *preview) reset(seed int64) {
	p.seed = seed
	p.rng = rand.New(rand.NewSource(seed))
	p.subjects = p.subjects[:0]
	for i := 0; i < numSubject; i++ {
		p.subjects = append(p.subjects, creature.Default(p.params))
	}
	p.trail = p.trail[:0]
	p.escapes = 0
	p.simTime = 0
}

// setParams rebuilds the subjects with new params, keeping their motion.
func (p *preview) setParams(params creature.Params) {
	p.params = params
	for i, old := range p.subjects {
		c := creature.Default(params)
		c.Position, c.Momentum = old.Position, old.Momentum
		p.subjects[i] = c
	}
}

func (p *preview) step(dt float32) {
	for i, c := range p.subjects {
		if err := c.Update(dt, p.worldSize, p.rng); err != nil {
			continue
		}
		if c.Dead() {
			p.escapes++
			p.subjects[i] = creature.Default(p.params)
		}
	}
	p.simTime += dt

	p.trail = append(p.trail, p.subjects[0].Position)
	if len(p.trail) > trailLen {
		p.trail = p.trail[1:]
	}
}

func (p *preview) meanSpeed() float32 {
	var sum float32
	for _, c := range p.subjects {
		sum += c.Momentum.Length()
	}
	return sum / float32(len(p.subjects))
}

// slider draws a labeled slider and returns the new value.
func slider(x float32, y *float32, label, lo, hi string, value, minV, maxV float32) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20}, lo, hi, value, minV, maxV)
	rl.DrawText(fmt.Sprintf("%.2f", value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return v
}

func paramsYAML(p creature.Params) string {
	data, err := yaml.Marshal(map[string]creature.Params{"creature": p})
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Locomotion Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	p := newPreview(creature.DefaultParams(), 12345)
	surface := ui.WorldSurface{Cam: camera.New(previewSize, previewSize, arenaHalf, arenaHalf)}
	lines := renderer.NewLineRenderer(1.5)
	running := true

	for !rl.WindowShouldClose() {
		if running {
			p.step(min(rl.GetFrameTime(), 1.0/15))
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview area
		rl.BeginScissorMode(10, 10, previewSize, previewSize)
		rl.DrawRectangle(10, 10, previewSize, previewSize, backgroundColor)
		rl.BeginMode2D(rl.Camera2D{Offset: rl.Vector2{X: 10, Y: 10}, Zoom: 1})
		renderer.DrawArena(surface, p.worldSize, 1, arenaColor)
		for i := 1; i < len(p.trail); i++ {
			surface.DrawLine(p.trail[i-1], p.trail[i], 0.5, trailColor)
		}
		lines.Begin()
		for _, c := range p.subjects {
			lines.Add(c)
		}
		lines.Flush(surface)
		rl.EndMode2D()
		rl.EndScissorMode()
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Stats
		statsY := int32(previewSize + 25)
		subject := p.subjects[0]
		rl.DrawText(fmt.Sprintf("Mean speed: %.1f  Escapes: %d  Time: %.1fs", p.meanSpeed(), p.escapes, p.simTime), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Move chance: %.3f  Energy: %.1f income / %.1f required",
			subject.MovementChance(), subject.EnergyIncome(), subject.EnergyRequirement()), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)
		rl.DrawText("Locomotion Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		next := p.params
		next.MoveRate = slider(panelX, &panelY, "Move rate (activations/s at full Move share)", "1", "30", next.MoveRate, 1, 30)
		next.ForceScale = slider(panelX, &panelY, "Force scale (thrust per activation)", "10", "400", next.ForceScale, 10, 400)
		next.BounceDamping = slider(panelX, &panelY, "Bounce damping (momentum kept on a wall hit)", "0", "1", next.BounceDamping, 0, 1)
		next.MomentumHalfLife = slider(panelX, &panelY, "Momentum half-life (seconds)", "0.1", "5", next.MomentumHalfLife, 0.1, 5)
		if next != p.params {
			p.setParams(next)
		}

		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(running, "Pause", "Run")) {
			running = !running
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Restart") {
			p.reset(p.seed)
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			p.reset(int64(rl.GetRandomValue(0, 99999)))
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			p.params = creature.DefaultParams()
			p.reset(12345)
		}
		panelY += 55

		rl.DrawText(fmt.Sprintf("YAML Config (seed %d):", p.seed), int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		out := paramsYAML(p.params)
		rl.DrawText(out, int32(panelX), int32(panelY), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(out)
		}

		rl.EndDrawing()
	}
}
