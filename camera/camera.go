// Package camera maps the arena onto the window with pan and zoom.
//
// World space is centered on the arena origin with y pointing up; screen space
// has its origin at the top-left corner with y pointing down.
package camera

// fitPadding is the fraction of the viewport the arena fills at fit zoom.
const fitPadding = 0.95

// Camera controls the viewport into the arena.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom is screen pixels per world unit
	Zoom float32

	ViewportW, ViewportH float32

	// Arena half-extents; the camera center never leaves the arena
	HalfW, HalfH float32

	MinZoom, MaxZoom float32
}

// New creates a camera centered on an arena with the given half-extents,
// zoomed so the whole arena fits the viewport.
func New(viewportW, viewportH, halfW, halfH float32) *Camera {
	c := &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		HalfW:     halfW,
		HalfH:     halfH,
	}
	c.updateLimits()
	c.Reset()
	return c
}

// FitZoom returns the zoom at which the whole arena fits the viewport.
func (c *Camera) FitZoom() float32 {
	if c.HalfW <= 0 || c.HalfH <= 0 {
		return 1
	}
	return fitPadding * min(c.ViewportW/(2*c.HalfW), c.ViewportH/(2*c.HalfH))
}

func (c *Camera) updateLimits() {
	fit := c.FitZoom()
	c.MinZoom = fit / 2
	c.MaxZoom = fit * 16
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 - (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y - (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible reports whether a circle at (wx, wy) could be on screen.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Resize updates viewport dimensions and zoom limits.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.updateLimits()
	c.SetZoom(c.Zoom)
}

// Pan moves the view by a drag of (dx, dy) screen pixels.
// Dragging right moves the world right, so the camera moves left.
func (c *Camera) Pan(dx, dy float32) {
	c.X = clamp(c.X-dx/c.Zoom, -c.HalfW, c.HalfW)
	c.Y = clamp(c.Y+dy/c.Zoom, -c.HalfH, c.HalfH)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// the screen position (sx, sy) fixed.
func (c *Camera) ZoomAt(factor, sx, sy float32) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.SetZoom(c.Zoom * factor)
	nx, ny := c.ScreenToWorld(sx, sy)
	c.X = clamp(c.X+wx-nx, -c.HalfW, c.HalfW)
	c.Y = clamp(c.Y+wy-ny, -c.HalfH, c.HalfH)
}

// Reset centers the camera on the arena at fit zoom.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
	c.Zoom = c.FitZoom()
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
