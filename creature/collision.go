package creature

// checkWallCollision kills the creature when any endpoint is already outside the
// arena, and reflects momentum on each axis an endpoint would cross during the
// next dt. An axis at rest never bounces. Each axis bounces at most once per
// call; any bounce damps the whole momentum vector once.
func (c *Creature) checkWallCollision(dt float32, worldSize Vec2) {
	var bouncedX, bouncedY bool
	for _, s := range c.segments {
		for _, p := range [2]Vec2{s.A, s.B} {
			world := c.Position.Add(p)
			if outside(world.X, worldSize.X) || outside(world.Y, worldSize.Y) {
				c.dead = true
			}

			next := world.Add(c.Momentum.Scale(dt))
			if !bouncedX && c.Momentum.X != 0 && outside(next.X, worldSize.X) {
				c.Momentum.X = -c.Momentum.X
				bouncedX = true
			}
			if !bouncedY && c.Momentum.Y != 0 && outside(next.Y, worldSize.Y) {
				c.Momentum.Y = -c.Momentum.Y
				bouncedY = true
			}
		}
	}
	if bouncedX || bouncedY {
		c.Momentum = c.Momentum.Scale(c.params.BounceDamping)
	}
}

func outside(v, halfExtent float32) bool {
	return v < -halfExtent || v > halfExtent
}
