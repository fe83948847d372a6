package physics

import (
	"kickabout/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ApplyGravity advances one tick of vertical motion: v.y += g, p.y += v.y.
func ApplyGravity(pos, vel rl.Vector3, g float32) (rl.Vector3, rl.Vector3) {
	vel.Y += g
	pos.Y += vel.Y
	return pos, vel
}

// IntegrateCharacter applies gravity to the character. The character is
// airborne until collision resolution puts it back on something.
func IntegrateCharacter(c *components.Character, cfg Config) {
	if c == nil {
		return
	}

	pos, vel := ApplyGravity(c.Position, rl.Vector3{Y: c.VelocityY}, cfg.Gravity)
	c.Position = pos
	c.VelocityY = vel.Y
	c.Grounded = false
}

// IntegrateBall applies doubled gravity and moves the ball by its velocity.
func IntegrateBall(b *components.Ball, cfg Config) {
	if b == nil {
		return
	}

	b.Velocity.Y += cfg.Gravity * BallGravityScale
	b.Position = rl.Vector3Add(b.Position, b.Velocity)
}
