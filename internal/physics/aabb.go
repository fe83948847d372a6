package physics

import (
	"kickabout/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// ObstacleAABB returns the bounds of an obstacle.
func ObstacleAABB(o components.Obstacle) AABB {
	return NewAABBFromCenter(o.Center, o.Size())
}

// Expand grows the box by r on every side.
func (a AABB) Expand(r float32) AABB {
	pad := rl.Vector3{X: r, Y: r, Z: r}
	return AABB{
		Min: rl.Vector3Subtract(a.Min, pad),
		Max: rl.Vector3Add(a.Max, pad),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Contains reports whether p is strictly inside the box. Points on a face
// are outside.
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X > a.Min.X && p.X < a.Max.X &&
		p.Y > a.Min.Y && p.Y < a.Max.Y &&
		p.Z > a.Min.Z && p.Z < a.Max.Z
}

// NearestFace returns the outward normal of the face closest to p and the
// distance from p to that face. p is expected to be inside the box.
func (a AABB) NearestFace(p rl.Vector3) (normal rl.Vector3, depth float32) {
	// Distance to each face
	dx1 := a.Max.X - p.X // exit through +X
	dx2 := p.X - a.Min.X // exit through -X
	dy1 := a.Max.Y - p.Y // exit through +Y
	dy2 := p.Y - a.Min.Y // exit through -Y
	dz1 := a.Max.Z - p.Z // exit through +Z
	dz2 := p.Z - a.Min.Z // exit through -Z

	// Find the face with minimum penetration
	depth = dx1
	normal = rl.Vector3{X: 1}

	if dx2 < depth {
		depth = dx2
		normal = rl.Vector3{X: -1}
	}
	if dy1 < depth {
		depth = dy1
		normal = rl.Vector3{Y: 1}
	}
	if dy2 < depth {
		depth = dy2
		normal = rl.Vector3{Y: -1}
	}
	if dz1 < depth {
		depth = dz1
		normal = rl.Vector3{Z: 1}
	}
	if dz2 < depth {
		depth = dz2
		normal = rl.Vector3{Z: -1}
	}

	return normal, depth
}
