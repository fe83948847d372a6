package components

import (
	"math"

	"kickabout/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Character is the player's body: a box of 2*Radius by 2*HalfHeight that
// walks on the ground plane and on top of obstacles.
type Character struct {
	Position  rl.Vector3
	Yaw       float32 // rendered facing, radians
	TargetYaw float32 // facing the smoothing converges to
	VelocityY float32
	Grounded  bool

	// Configuration
	HalfHeight float32
	Radius     float32 // horizontal half-width, also the collision margin
	MoveSpeed  float32 // units per tick
	JumpForce  float32 // initial upward velocity, units per tick
	TurnLerp   float32 // fraction of the remaining turn applied per tick
}

// NewCharacter creates a character standing at pos with default tuning.
func NewCharacter(pos rl.Vector3) *Character {
	return &Character{
		Position:   pos,
		Grounded:   true,
		HalfHeight: 1.0,
		Radius:     0.5,
		MoveSpeed:  0.1,
		JumpForce:  0.15,
		TurnLerp:   0.1,
	}
}

func (c *Character) Bottom() float32 {
	return c.Position.Y - c.HalfHeight
}

func (c *Character) Top() float32 {
	return c.Position.Y + c.HalfHeight
}

// Facing returns the unit vector the character is turned towards.
func (c *Character) Facing() rl.Vector3 {
	return rl.Vector3{
		X: float32(math.Sin(float64(c.Yaw))),
		Z: float32(math.Cos(float64(c.Yaw))),
	}
}

// CameraBasis returns the horizontal forward and right vectors for a
// camera yaw. Yaw 0 looks down -Z.
func CameraBasis(cameraYaw float32) (forward, right rl.Vector3) {
	forward = rl.Vector3RotateByAxisAngle(rl.Vector3{Z: -1}, rl.Vector3{Y: 1}, cameraYaw)
	forward.Y = 0
	right = rl.Vector3{X: -forward.Z, Y: 0, Z: forward.X}
	return
}

// MoveDirection combines the held movement keys into a unit direction
// relative to the camera. The zero vector means no movement.
func MoveDirection(in input.Snapshot, cameraYaw float32) rl.Vector3 {
	if !in.HasMovement() {
		return rl.Vector3{}
	}
	forward, right := CameraBasis(cameraYaw)

	var dir rl.Vector3
	if in.Forward {
		dir = rl.Vector3Add(dir, forward)
	}
	if in.Back {
		dir = rl.Vector3Subtract(dir, forward)
	}
	if in.Left {
		dir = rl.Vector3Subtract(dir, right)
	}
	if in.Right {
		dir = rl.Vector3Add(dir, right)
	}

	// Opposing keys cancel out
	if rl.Vector3Length(dir) < 1e-6 {
		return rl.Vector3{}
	}
	// Normalize diagonal movement so you don't go faster diagonally
	return rl.Vector3Normalize(dir)
}

// Locomote moves the character for one tick and blends its facing.
// It reports whether the character walked this tick.
func (c *Character) Locomote(in input.Snapshot, cameraYaw float32) bool {
	dir := MoveDirection(in, cameraYaw)
	walking := dir.X != 0 || dir.Z != 0

	if walking {
		c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(dir, c.MoveSpeed))
		c.TargetYaw = float32(math.Atan2(float64(dir.X), float64(dir.Z)))
	}

	// Turn the short way round
	c.Yaw = WrapAngle(c.Yaw + WrapAngle(c.TargetYaw-c.Yaw)*c.TurnLerp)
	return walking
}

// Jump starts a jump when grounded. There is no double jump.
func (c *Character) Jump() bool {
	if !c.Grounded {
		return false
	}
	c.VelocityY = c.JumpForce
	c.Grounded = false
	return true
}

// WrapAngle maps an angle in radians into (-π, π].
func WrapAngle(a float32) float32 {
	w := float32(math.Remainder(float64(a), 2*math.Pi))
	if w <= -math.Pi {
		w += 2 * math.Pi
	}
	return w
}
