// Render tool - draws a saved snapshot to a PNG file.
//
// Usage: go run ./cmd/render -snapshot output/snapshots/snapshot_3600.json -out frame.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/linelife/camera"
	"github.com/pthm-cable/linelife/components"
	"github.com/pthm-cable/linelife/creature"
	"github.com/pthm-cable/linelife/renderer"
	"github.com/pthm-cable/linelife/systems"
	"github.com/pthm-cable/linelife/telemetry"
	"github.com/pthm-cable/linelife/ui"
)

var (
	backgroundColor = rl.Color{R: 12, G: 14, B: 18, A: 255}
	arenaColor      = rl.Color{R: 70, G: 80, B: 95, A: 255}
)

func main() {
	snapshotPath := flag.String("snapshot", "", "Snapshot JSON to render")
	outPath := flag.String("out", "frame.png", "Output PNG path")
	width := flag.Int("width", 1024, "Render width")
	height := flag.Int("height", 640, "Render height")
	thickness := flag.Float64("thickness", 1.5, "Line thickness in world units")
	flag.Parse()

	if *snapshotPath == "" {
		fmt.Fprintln(os.Stderr, "-snapshot is required")
		os.Exit(2)
	}

	snap, err := telemetry.LoadSnapshot(*snapshotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load snapshot: %v\n", err)
		os.Exit(1)
	}
	life := systems.NewLifecycle(ecs.NewWorld())
	if err := snap.Restore(life); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore snapshot: %v\n", err)
		os.Exit(1)
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Render")
	defer rl.CloseWindow()

	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	ws := snap.WorldSize()
	surface := ui.WorldSurface{Cam: camera.New(float32(*width), float32(*height), ws.X, ws.Y)}
	lines := renderer.NewLineRenderer(float32(*thickness))
	life.Each(func(_ components.Identity, c *creature.Creature) {
		lines.Add(c)
	})

	rl.BeginTextureMode(target)
	rl.ClearBackground(backgroundColor)
	renderer.DrawArena(surface, ws, 2, arenaColor)
	lines.Flush(surface)
	rl.DrawText(fmt.Sprintf("tick %d  creatures %d", snap.Tick, life.Alive()), 10, 10, 16, rl.LightGray)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Snapshot rendered to: %s (%dx%d, %d lines)\n", *outPath, *width, *height, len(lines.Lines()))
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}
