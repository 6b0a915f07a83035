package inspector

import (
	"github.com/pthm-cable/linelife/components"
	"github.com/pthm-cable/linelife/creature"
)

// View is the inspected state of one creature.
type View struct {
	ID       uint32  `inspect:"label"`
	Age      float32 `inspect:"label,fmt:%.1f s"`
	Segments int     `inspect:"label"`
	Radius   float32 `inspect:"label,fmt:%.1f"`

	Position creature.Vec2 `inspect:"vec"`
	Momentum creature.Vec2 `inspect:"vec"`
	Speed    float32       `inspect:"bar,max:200,fmt:%.0f"`

	Energy         float32 `inspect:"label,fmt:%.1f"`
	Income         float32 `inspect:"bar,max:50,fmt:%.1f"`
	Requirement    float32 `inspect:"bar,max:50,fmt:%.1f"`
	Balance        float32 `inspect:"centered,max:50,fmt:%+.1f"`
	MovementChance float32 `inspect:"bar,max:1,name:Move share"`

	Lengths creature.SegmentLengths `inspect:"skip"`
	Dead    bool                    `inspect:"bool"`
}

// NewView captures c at tick, with dt seconds per tick.
func NewView(id components.Identity, c *creature.Creature, tick int32, dt float32) View {
	income := c.EnergyIncome()
	requirement := c.EnergyRequirement()
	return View{
		ID:             id.ID,
		Age:            float32(tick-id.BornTick) * dt,
		Segments:       c.NumSegments(),
		Radius:         c.Radius(),
		Position:       c.Position,
		Momentum:       c.Momentum,
		Speed:          c.Momentum.Length(),
		Energy:         c.Energy,
		Income:         income,
		Requirement:    requirement,
		Balance:        income - requirement,
		MovementChance: c.MovementChance(),
		Lengths:        c.SegmentLengths(),
		Dead:           c.Dead(),
	}
}
