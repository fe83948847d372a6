package physics

import "kickabout/internal/components"

// Contact summarizes what the resolver did to the character this tick.
type Contact struct {
	Landed bool // came to rest on an obstacle top
	Pushed bool // pushed out of an obstacle side
	Floor  bool // clamped to the ground plane
}

// ResolveCharacter keeps the character out of the obstacles and on or above
// the ground. Each obstacle is handled on its own; overlapping obstacles are
// not arbitrated against each other.
//
// Landing wins over the side push: a character whose feet are inside the
// LandingTolerance band under a box top while not rising is snapped onto
// the top. A fall of more than LandingTolerance in one tick can skip the
// band and is then treated as a side hit.
func ResolveCharacter(c *components.Character, obstacles []components.Obstacle, cfg Config) Contact {
	var contact Contact
	if c == nil {
		return contact
	}

	for _, o := range obstacles {
		half := o.HalfExtents()
		dx := c.Position.X - o.Center.X
		dz := c.Position.Z - o.Center.Z
		reachX := half.X + c.Radius
		reachZ := half.Z + c.Radius

		// Only obstacles under the character's footprint matter
		if absf(dx) >= reachX || absf(dz) >= reachZ {
			continue
		}

		top := o.Top()
		bottom := c.Bottom()

		if bottom <= top && bottom > top-cfg.LandingTolerance && c.VelocityY <= 0 {
			c.Position.Y = top + c.HalfHeight
			c.VelocityY = 0
			c.Grounded = true
			contact.Landed = true
			continue
		}

		if bottom < top && c.Top() > o.Bottom() {
			// Leave through the face the character is closest to. Velocity
			// is left alone.
			if reachX-absf(dx) < reachZ-absf(dz) {
				c.Position.X = o.Center.X + signf(dx)*reachX
			} else {
				c.Position.Z = o.Center.Z + signf(dz)*reachZ
			}
			contact.Pushed = true
		}
	}

	// The ground is the floor of last resort
	if c.Bottom() <= cfg.GroundY {
		c.Position.Y = cfg.GroundY + c.HalfHeight
		c.VelocityY = 0
		c.Grounded = true
		contact.Floor = true
	}

	return contact
}
