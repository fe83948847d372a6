package components

import rl "github.com/gen2brain/raylib-go/raylib"

// Ball is the kickable point mass. Velocity is in units per tick.
type Ball struct {
	Position rl.Vector3
	Velocity rl.Vector3
	Radius   float32
	Friction float32 // horizontal velocity kept per ground contact
	Bounce   float32 // 0 = no bounce, 1 = perfect bounce
}

func NewBall(pos rl.Vector3) *Ball {
	return &Ball{
		Position: pos,
		Radius:   0.5,
		Friction: 0.98,
		Bounce:   0.7,
	}
}

func (b *Ball) Bottom() float32 {
	return b.Position.Y - b.Radius
}

func (b *Ball) Speed() float32 {
	return rl.Vector3Length(b.Velocity)
}
