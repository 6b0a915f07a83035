package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/linelife/inspector"
)

// InspectorPanel draws the fields of the selected creature.
type InspectorPanel struct {
	renderer *Renderer
	width    int32
}

// NewInspectorPanel creates a panel of the given width.
func NewInspectorPanel(width int32) *InspectorPanel {
	return &InspectorPanel{renderer: NewRenderer(), width: width}
}

// Draw renders the view at (x, y) and returns the panel height.
func (p *InspectorPanel) Draw(x, y int32, title string, view any) int32 {
	r := p.renderer
	fields := inspector.ExtractFields(view)

	height := 2*r.Theme.Padding + r.Theme.LineHeight + 2 + int32(len(fields))*(r.Theme.LineHeight+2)
	r.DrawPanel(x, y, p.width, height)

	inner := p.width - 2*r.Theme.Padding
	cx := x + r.Theme.Padding
	cy := r.DrawSectionHeader(cx, y+r.Theme.Padding, title)

	for _, f := range fields {
		value, numeric := f.Float()
		format := f.Format
		if format == "" {
			format = "%.2f"
		}
		switch {
		case f.Widget == inspector.WidgetBar && numeric:
			cy = r.DrawBar(cx, cy, f.Name, value, f.Max, format, inner)
		case f.Widget == inspector.WidgetCentered && numeric:
			cy = r.DrawCenteredBar(cx, cy, f.Name, value, f.Max, format, inner)
		case f.Widget == inspector.WidgetBool:
			c := r.Theme.BarPositive
			if b, _ := f.Value.(bool); b {
				c = r.Theme.BarNegative
			}
			rl.DrawRectangle(cx+r.Theme.LabelWidth, cy+2, 10, 10, c)
			cy = r.DrawLabelValue(cx, cy, f.Name, "   "+f.Text())
		default:
			cy = r.DrawLabelValue(cx, cy, f.Name, f.Text())
		}
	}
	return height
}
