package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/linelife/components"
	"github.com/pthm-cable/linelife/creature"
	"github.com/pthm-cable/linelife/ui"
)

const controlsHelp = "Space: pause | ,/.: speed | N: spawn | R: reset | S: snapshot | Right drag: pan | Wheel: zoom | Home: recenter | Click: inspect"

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	g.applyActions(ui.Actions{
		TogglePause: rl.IsKeyPressed(rl.KeySpace),
		Spawn:       rl.IsKeyPressed(rl.KeyN),
		Reset:       rl.IsKeyPressed(rl.KeyR),
		Snapshot:    rl.IsKeyPressed(rl.KeyS),
		Speed:       g.keySpeed(),
	})

	g.handleCameraInput()
	g.handleSelection()
}

// keySpeed applies the , and . keys to the current speed.
func (g *Game) keySpeed() int {
	speed := g.stepsPerUpdate
	if rl.IsKeyPressed(rl.KeyComma) && speed > 1 {
		speed--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && speed < MaxSpeed {
		speed++
	}
	return speed
}

// applyActions carries out requests from the keyboard or the control strip.
func (g *Game) applyActions(act ui.Actions) {
	if act.TogglePause {
		g.paused = !g.paused
	}
	if act.Speed >= 1 {
		g.stepsPerUpdate = act.Speed
	}
	if act.Spawn {
		if err := g.spawnCreature(); err != nil {
			slog.Error("spawn failed", "error", err)
		}
	}
	if act.Reset {
		if err := g.reset(); err != nil {
			slog.Error("reset failed", "error", err)
		}
	}
	if act.Snapshot {
		if _, err := g.SaveSnapshot(); err != nil {
			slog.Error("failed to save snapshot", "error", err)
		}
	}
}

// handleResize propagates window size changes to the camera.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.camera.Resize(w, h)
}

// handleCameraInput processes camera pan and zoom.
func (g *Game) handleCameraInput() {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		g.camera.Pan(d.X, d.Y)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		m := rl.GetMousePosition()
		g.camera.ZoomAt(1+wheel*0.1, m.X, m.Y)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// handleSelection selects the creature under a left click, or clears the
// selection when the click hits empty arena.
func (g *Game) handleSelection() {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	m := rl.GetMousePosition()
	if g.onPanels(m.X, m.Y) {
		return
	}

	wx, wy := g.camera.ScreenToWorld(m.X, m.Y)
	g.picker.Reset()
	g.life.Each(func(id components.Identity, c *creature.Creature) {
		g.picker.Add(id.ID, c)
	})
	g.selected, g.hasSelected = g.picker.Pick(creature.V(wx, wy))
}

// onPanels reports whether a screen point lies on the control strip or the inspector.
func (g *Game) onPanels(x, y float32) bool {
	sw := int32(g.screenWidth)
	if g.controls.Contains(sw, x, y) {
		return true
	}
	if !g.hasSelected {
		return false
	}
	left, top := g.inspectorOrigin()
	return x >= float32(left) && x <= float32(left+inspectorWidth) &&
		y >= float32(top) && y <= float32(top+g.panelHeight)
}
