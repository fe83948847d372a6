package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cullNear = 0.1
	cullFar  = 1000.0
)

// plane is n·p + d = 0 with n pointing into the visible side.
type plane struct {
	normal   rl.Vector3
	distance float32
}

func (p plane) signedDistance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.normal, point) + p.distance
}

// frustum is the view volume of a perspective camera, used to skip drawing
// things that are off screen.
type frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// viewFrustum builds the frustum from the camera pose. aspect is width
// over height.
func viewFrustum(camera rl.Camera3D, aspect float32) frustum {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(camera.Target, camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, camera.Up))
	up := rl.Vector3CrossProduct(right, forward)

	halfV := float64(camera.Fovy*rl.Deg2rad) / 2
	halfH := math.Atan(math.Tan(halfV) * float64(aspect))

	side := func(axis rl.Vector3, half float64, sign float32) plane {
		n := rl.Vector3Add(
			rl.Vector3Scale(forward, float32(math.Sin(half))),
			rl.Vector3Scale(axis, sign*float32(math.Cos(half))),
		)
		return plane{normal: n, distance: -rl.Vector3DotProduct(n, camera.Position)}
	}

	ahead := rl.Vector3DotProduct(forward, camera.Position)

	var f frustum
	f.planes[0] = side(right, halfH, 1)
	f.planes[1] = side(right, halfH, -1)
	f.planes[2] = side(up, halfV, 1)
	f.planes[3] = side(up, halfV, -1)
	f.planes[4] = plane{normal: forward, distance: -(ahead + cullNear)}
	f.planes[5] = plane{normal: rl.Vector3Negate(forward), distance: ahead + cullFar}
	return f
}

// containsSphere reports whether any part of the sphere may be visible.
func (f *frustum) containsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if p.signedDistance(center) < -radius {
			return false
		}
	}
	return true
}
