package eggrun

// movePlayer applies gravity, integrates the player and lands it on a
// platform. The landing check uses the position before the move, so a
// fast fall cannot tunnel through a thin bar in a single frame.
func (g *Game) movePlayer(w *World, dt float64) {
	phys := g.cfg.Physics
	p := &w.Player

	p.Velocity.Y += phys.Gravity * dt

	landY, landed := g.landingTop(w, dt)

	p.ApplyVelocity(dt)

	if landed {
		p.Rect.Y = landY - p.Rect.H
		p.Velocity.Y = 0
	}
}

// landingTop returns the top of the first platform the player is about to
// land on this frame, in platform order.
func (g *Game) landingTop(w *World, dt float64) (float64, bool) {
	p := w.Player
	if p.Velocity.Y < 0 {
		return 0, false
	}

	buffer := g.cfg.Physics.GroundBuffer
	bottom := p.Rect.Bottom()
	projected := bottom + p.Velocity.Y*dt

	for _, plat := range w.Platforms {
		r := plat.Rect
		if p.Rect.Right() <= r.X || p.Rect.X >= r.Right() {
			continue
		}
		if bottom <= r.Y+buffer && projected >= r.Y {
			return r.Y, true
		}
	}
	return 0, false
}

// moveChickens integrates every chicken and reflects its velocity when it
// is outside the flight box and still heading away from it. There is no
// clamp: a reflected chicken flies back in on its own.
func (g *Game) moveChickens(w *World, dt float64) {
	b := g.cfg.Bounds.Chicken
	for i := range w.Chickens {
		c := &w.Chickens[i]
		c.ApplyVelocity(dt)
		c.Velocity.X = reflect(c.Rect.X, c.Velocity.X, b.MinX, b.MaxX)
		c.Velocity.Y = reflect(c.Rect.Y, c.Velocity.Y, b.MinY, b.MaxY)
	}
}

// reflect flips v when pos is outside [lo, hi] and v points further out.
func reflect(pos, v, lo, hi float64) float64 {
	if (pos > hi && v > 0) || (pos < lo && v < 0) {
		return -v
	}
	return v
}

// moveClouds drifts clouds and wraps the ones that ran off the far end.
func (g *Game) moveClouds(w *World, dt float64) {
	wrap := g.cfg.Bounds.CloudWrapX
	reset := g.cfg.Bounds.CloudResetX
	for i := range w.Clouds {
		c := &w.Clouds[i]
		c.ApplyVelocity(dt)
		if c.Rect.X > wrap {
			c.Rect.X = reset
		}
	}
}
