package components

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrInvalidObstacle is returned for obstacles with zero or negative extents.
var ErrInvalidObstacle = errors.New("obstacle extents must be positive")

// Obstacle is a static axis-aligned box collider.
type Obstacle struct {
	Center rl.Vector3
	Width  float32
	Height float32
	Depth  float32
}

func NewObstacle(center rl.Vector3, width, height, depth float32) Obstacle {
	return Obstacle{Center: center, Width: width, Height: height, Depth: depth}
}

// NewObstacleOnGround places a box so that its base sits at (x, y, z).
func NewObstacleOnGround(width, height, depth, x, y, z float32) Obstacle {
	return NewObstacle(rl.Vector3{X: x, Y: y + height/2, Z: z}, width, height, depth)
}

func (o Obstacle) Size() rl.Vector3 {
	return rl.Vector3{X: o.Width, Y: o.Height, Z: o.Depth}
}

func (o Obstacle) HalfExtents() rl.Vector3 {
	return rl.Vector3{X: o.Width / 2, Y: o.Height / 2, Z: o.Depth / 2}
}

func (o Obstacle) Top() float32 {
	return o.Center.Y + o.Height/2
}

func (o Obstacle) Bottom() float32 {
	return o.Center.Y - o.Height/2
}

// Validate rejects degenerate boxes. It is meant for level loading, not
// for the tick.
func (o Obstacle) Validate() error {
	if o.Width <= 0 || o.Height <= 0 || o.Depth <= 0 {
		return fmt.Errorf("%w: %gx%gx%g at (%g, %g, %g)", ErrInvalidObstacle,
			o.Width, o.Height, o.Depth, o.Center.X, o.Center.Y, o.Center.Z)
	}
	return nil
}
