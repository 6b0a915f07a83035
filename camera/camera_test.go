package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(1280, 800, 600, 375)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	// min(1280/1200, 800/750) = 1.0667, padded
	if !near(cam.Zoom, 0.95*1280.0/1200.0) {
		t.Errorf("expected fit zoom, got %f", cam.Zoom)
	}
}

func TestWorldToScreenAxes(t *testing.T) {
	cam := New(1000, 1000, 500, 500)
	cam.SetZoom(1)

	tests := []struct {
		name           string
		wx, wy, sx, sy float32
	}{
		{"origin at center", 0, 0, 500, 500},
		{"x right", 100, 0, 600, 500},
		{"y up is screen up", 0, 100, 500, 400},
		{"y down is screen down", 0, -100, 500, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := cam.WorldToScreen(tt.wx, tt.wy)
			if !near(sx, tt.sx) || !near(sy, tt.sy) {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.wx, tt.wy, sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 800, 600, 375)
	cam.Pan(37, -12)
	cam.SetZoom(2.5)

	for _, tc := range []struct{ sx, sy float32 }{
		{640, 400},
		{100, 100},
		{1200, 700},
	} {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)", tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPanStaysInArena(t *testing.T) {
	cam := New(1280, 800, 600, 375)
	cam.SetZoom(1)

	cam.Pan(100, 0)
	if !near(cam.X, -100) {
		t.Errorf("drag right should move camera left, X = %f", cam.X)
	}
	cam.Pan(0, 50)
	if !near(cam.Y, 50) {
		t.Errorf("drag down should move camera up, Y = %f", cam.Y)
	}

	cam.Pan(-1e6, -1e6)
	if cam.X != 600 || cam.Y != -375 {
		t.Errorf("camera left the arena: (%f, %f)", cam.X, cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 800, 600, 375)

	cam.SetZoom(1000)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("zoom %f not clamped to max %f", cam.Zoom, cam.MaxZoom)
	}
	cam.SetZoom(0)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("zoom %f not clamped to min %f", cam.Zoom, cam.MinZoom)
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	cam := New(1280, 800, 600, 375)
	wx, wy := cam.ScreenToWorld(900, 200)

	cam.ZoomAt(2, 900, 200)

	sx, sy := cam.WorldToScreen(wx, wy)
	if !near(sx, 900) || !near(sy, 200) {
		t.Errorf("anchor moved to (%f, %f)", sx, sy)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1000, 1000, 500, 500)
	cam.SetZoom(1)

	if !cam.IsVisible(0, 0, 1) {
		t.Error("origin should be visible")
	}
	if cam.IsVisible(520, 0, 10) {
		t.Error("point beyond the viewport should be culled")
	}
	if !cam.IsVisible(505, 0, 10) {
		t.Error("circle overlapping the edge should be visible")
	}
}

func TestResizeAndReset(t *testing.T) {
	cam := New(1280, 800, 600, 375)
	cam.Pan(200, 200)
	cam.SetZoom(cam.MaxZoom)

	cam.Resize(640, 400)
	if cam.Zoom > cam.MaxZoom {
		t.Errorf("zoom %f above new max %f", cam.Zoom, cam.MaxZoom)
	}

	cam.Reset()
	if cam.X != 0 || cam.Y != 0 || cam.Zoom != cam.FitZoom() {
		t.Errorf("Reset left camera at (%f, %f) zoom %f", cam.X, cam.Y, cam.Zoom)
	}
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if minX > -600 || maxX < 600 || minY > -375 || maxY < 375 {
		t.Errorf("fit view %v,%v,%v,%v does not cover the arena", minX, minY, maxX, maxY)
	}
}
