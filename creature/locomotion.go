package creature

// maybeMove applies at most one thrust impulse to the momentum. The chance of
// acting and the force of the impulse both scale with the Move share of the body.
func (c *Creature) maybeMove(dt float32, rng Source) {
	if c.lengths.Move <= 0 {
		return
	}
	chance := c.MovementChance()
	if rng.Float32() >= chance*c.params.MoveRate*dt {
		return
	}

	force := chance * c.params.ForceScale
	if rng.Float32() < 0.5 {
		dir := V(float32(rng.NormFloat64()), float32(rng.NormFloat64())).NormalizeOrZero()
		c.Momentum = c.Momentum.Add(dir.Scale(force))
		return
	}

	seg := c.pickMoveSegment(rng.Float32() * c.lengths.Move)
	if rng.Float32() < 0.5 {
		force = -force
	}
	c.Momentum = c.Momentum.Add(seg.Direction().Scale(force))
}

// pickMoveSegment walks the Move segments in body order and returns the one whose
// cumulative length range contains r.
func (c *Creature) pickMoveSegment(r float32) Segment {
	var last Segment
	for _, s := range c.segments {
		if s.Type != Move {
			continue
		}
		l := s.Length()
		if r < l {
			return s
		}
		r -= l
		last = s
	}
	// r can land on the upper bound after float rounding.
	return last
}
