package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/linelife/components"
	"github.com/pthm-cable/linelife/creature"
	"github.com/pthm-cable/linelife/inspector"
	"github.com/pthm-cable/linelife/renderer"
	"github.com/pthm-cable/linelife/ui"
)

const inspectorWidth = 260

var (
	backgroundColor = rl.Color{R: 12, G: 14, B: 18, A: 255}
	arenaColor      = rl.Color{R: 70, G: 80, B: 95, A: 255}
	selectionColor  = rl.Color{R: 255, G: 255, B: 255, A: 200}
)

// Draw renders one frame.
func (g *Game) Draw() {
	g.perf.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	surface := ui.WorldSurface{Cam: g.camera}
	renderer.DrawArena(surface, g.worldSize, 2, arenaColor)

	g.lines.Begin()
	var selected *creature.Creature
	var selectedID components.Identity
	g.life.Each(func(id components.Identity, c *creature.Creature) {
		if g.hasSelected && id.ID == g.selected {
			selected, selectedID = c, id
		}
		if c.Dead() || !g.camera.IsVisible(c.Position.X, c.Position.Y, c.Radius()) {
			return
		}
		g.lines.Add(c)
	})
	g.lines.Flush(surface)
	g.particles.Draw(surface)

	if selected != nil {
		surface.DrawRing(selected.Position, selected.Radius()+4, selectionColor)
	}

	g.drawUI(selected, selectedID)

	rl.EndDrawing()
}

// drawUI draws the HUD, control strip and inspector. Control strip actions
// take effect immediately.
func (g *Game) drawUI(selected *creature.Creature, id components.Identity) {
	g.hud.Draw(ui.HUDData{
		Title:     "Line Life",
		Creatures: g.life.Alive(),
		Deaths:    g.totalDeaths,
		Tick:      g.tick,
		SimTime:   g.simTime,
		Speed:     g.stepsPerUpdate,
		FPS:       rl.GetFPS(),
		Paused:    g.paused,
	})
	g.hud.DrawLegend(legend())
	g.hud.DrawControls(int32(g.screenHeight), controlsHelp)

	g.applyActions(g.controls.Draw(int32(g.screenWidth), g.paused, g.stepsPerUpdate))

	if selected == nil {
		g.panelHeight = 0
		return
	}
	x, y := g.inspectorOrigin()
	view := inspector.NewView(id, selected, g.tick, g.cfg.Derived.DT32)
	g.panelHeight = g.inspectorPanel.Draw(x, y, fmt.Sprintf("Creature #%d", id.ID), view)
}

// inspectorOrigin returns the top-left corner of the inspector panel, below the control strip.
func (g *Game) inspectorOrigin() (int32, int32) {
	return int32(g.screenWidth) - inspectorWidth - 10, 10 + g.controls.Height() + 10
}

func legend() []ui.LegendEntry {
	types := creature.SegmentTypes()
	entries := make([]ui.LegendEntry, len(types))
	for i, t := range types {
		entries[i] = ui.LegendEntry{Color: renderer.DefaultPalette.Color(t), Label: t.String()}
	}
	return entries
}
