package physics

import (
	"kickabout/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BallEvent summarizes one tick of ball dynamics.
type BallEvent struct {
	Grounded  bool
	Kicked    bool
	Bounced   bool // reflected off an obstacle face
	HitBounds bool
}

// StepBall runs one tick of the ball: gravity, ground bounce, kick by the
// character, obstacle bounce and play-area bounds, in that order. moving
// selects the stronger kick.
func StepBall(b *components.Ball, c *components.Character, moving bool, obstacles []components.Obstacle, cfg Config) BallEvent {
	var ev BallEvent
	if b == nil {
		return ev
	}

	IntegrateBall(b, cfg)

	ev.Grounded = bounceOffGround(b, cfg)
	if c != nil {
		ev.Kicked = kick(b, c, moving, cfg)
	}
	for _, o := range obstacles {
		if bounceOffObstacle(b, o) {
			ev.Bounced = true
		}
	}
	ev.HitBounds = clampToBounds(b, cfg.Bounds)

	return ev
}

func bounceOffGround(b *components.Ball, cfg Config) bool {
	if b.Bottom() > cfg.GroundY {
		return false
	}

	b.Position.Y = cfg.GroundY + b.Radius
	b.Velocity.Y = -b.Velocity.Y * b.Bounce
	if b.Velocity.Y < cfg.RestSpeed {
		b.Velocity.Y = 0
	}
	b.Velocity.X *= b.Friction
	b.Velocity.Z *= b.Friction
	return true
}

// kick replaces the ball's velocity with a push away from the character
// when the two touch.
func kick(b *components.Ball, c *components.Character, moving bool, cfg Config) bool {
	delta := rl.Vector3Subtract(b.Position, c.Position)
	if rl.Vector3Length(delta) >= b.Radius+cfg.KickReach {
		return false
	}

	dir := horizontal(delta)
	if rl.Vector3Length(dir) < 1e-4 {
		// Ball straight above or below: send it where the character faces
		dir = c.Facing()
	}
	dir = rl.Vector3Normalize(dir)

	strength := cfg.KickStanding
	if moving {
		strength = cfg.KickMoving
	}

	b.Velocity = rl.Vector3Scale(dir, strength)
	b.Velocity.Y = cfg.KickLift
	return true
}

// bounceOffObstacle reflects the ball off the nearest face of an obstacle
// it has entered. Only one face responds per obstacle and tick.
func bounceOffObstacle(b *components.Ball, o components.Obstacle) bool {
	box := ObstacleAABB(o).Expand(b.Radius)
	if !box.Contains(b.Position) {
		return false
	}

	normal, depth := box.NearestFace(b.Position)

	// Put the ball back on the face it came through
	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(normal, depth))

	if rl.Vector3DotProduct(b.Velocity, normal) < 0 {
		b.Velocity = rl.Vector3Scale(rl.Vector3Reflect(b.Velocity, normal), b.Bounce)
	}
	return true
}

func clampToBounds(b *components.Ball, bounds float32) bool {
	hit := false
	if b.Position.X > bounds || b.Position.X < -bounds {
		b.Position.X = signf(b.Position.X) * bounds
		b.Velocity.X = -b.Velocity.X * b.Bounce
		hit = true
	}
	if b.Position.Z > bounds || b.Position.Z < -bounds {
		b.Position.Z = signf(b.Position.Z) * bounds
		b.Velocity.Z = -b.Velocity.Z * b.Bounce
		hit = true
	}
	return hit
}
