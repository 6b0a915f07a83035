package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds the values shown in the heads-up display.
type HUDData struct {
	Title     string
	Creatures int
	Deaths    int // since start
	Tick      int32
	SimTime   float32
	Speed     int
	FPS       int32
	Paused    bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Creatures: %d | Deaths: %d", data.Creatures, data.Deaths),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Time: %.1fs | Speed: %dx | FPS: %d", data.Tick, data.SimTime, data.Speed, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 75, 16, rl.Yellow)
	}
}

// DrawLegend renders the segment color key below the HUD.
func (h *HUD) DrawLegend(entries []LegendEntry) {
	y := int32(100)
	for _, e := range entries {
		y = h.renderer.DrawSwatch(10, y, e.Color, e.Label)
	}
}

// LegendEntry pairs a color with its meaning.
type LegendEntry struct {
	Color rl.Color
	Label string
}

// DrawControls renders the key binding legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
