package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Actions reports which controls were used this frame.
type Actions struct {
	TogglePause bool
	Spawn       bool
	Reset       bool
	Snapshot    bool
	Speed       int // requested steps per frame
}

// Controls is the raygui strip in the top-right corner.
type Controls struct {
	renderer *Renderer
	width    int32
	maxSpeed int
}

// NewControls creates the control strip.
func NewControls(width int32, maxSpeed int) *Controls {
	return &Controls{renderer: NewRenderer(), width: width, maxSpeed: maxSpeed}
}

// Height returns the strip height in pixels.
func (c *Controls) Height() int32 {
	return 4*c.renderer.Theme.LineHeight + 3*28 + 2*c.renderer.Theme.Padding
}

// Contains reports whether the screen point lies on the strip.
func (c *Controls) Contains(screenW int32, x, y float32) bool {
	left := float32(screenW - c.width - 10)
	return x >= left && x <= left+float32(c.width) && y >= 10 && y <= 10+float32(c.Height())
}

// Draw renders the strip and returns the actions taken on it.
func (c *Controls) Draw(screenW int32, paused bool, speed int) Actions {
	r := c.renderer
	pad := r.Theme.Padding
	x := screenW - c.width - 10
	y := int32(10)
	r.DrawPanel(x, y, c.width, c.Height())

	act := Actions{Speed: speed}
	inner := float32(c.width - 2*pad)
	fx := float32(x + pad)
	y += pad

	pauseLabel := "Pause"
	if paused {
		pauseLabel = "Resume"
	}
	act.TogglePause = gui.Button(rl.Rectangle{X: fx, Y: float32(y), Width: inner, Height: 24}, pauseLabel)
	y += 28

	rl.DrawText(fmt.Sprintf("Speed: %dx", speed), x+pad, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight
	v := gui.SliderBar(
		rl.Rectangle{X: fx + 12, Y: float32(y), Width: inner - 24, Height: 14},
		"1", fmt.Sprint(c.maxSpeed),
		float32(speed), 1, float32(c.maxSpeed),
	)
	act.Speed = min(max(int(v+0.5), 1), c.maxSpeed)
	y += 2 * r.Theme.LineHeight

	half := (inner - 4) / 2
	act.Spawn = gui.Button(rl.Rectangle{X: fx, Y: float32(y), Width: half, Height: 24}, "Spawn")
	act.Reset = gui.Button(rl.Rectangle{X: fx + half + 4, Y: float32(y), Width: half, Height: 24}, "Reset")
	y += 28

	act.Snapshot = gui.Button(rl.Rectangle{X: fx, Y: float32(y), Width: inner, Height: 24}, "Snapshot")

	return act
}
