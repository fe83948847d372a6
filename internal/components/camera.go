package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CameraRig is a third-person orbit camera that follows a target.
type CameraRig struct {
	Yaw      float32 // radians about +Y
	Pitch    float32 // radians about +X, clamped to [-PitchLimit/2, PitchLimit]
	Distance float32 // zoom, clamped to [MinDistance, MaxDistance]

	// Configuration
	Height       float32 // offset height before rotation
	PitchLimit   float32
	Sensitivity  float32 // radians per unit of mouse movement
	ZoomScale    float32 // distance per unit of wheel movement
	MinDistance  float32
	MaxDistance  float32
	MinClearance float32 // lowest camera height above the ground
	FOV          float32

	// Derived each tick by Follow
	Position rl.Vector3
	Target   rl.Vector3
}

func NewCameraRig() *CameraRig {
	return &CameraRig{
		Distance:     8,
		Height:       4,
		PitchLimit:   math.Pi / 6,
		Sensitivity:  0.002,
		ZoomScale:    0.01,
		MinDistance:  4,
		MaxDistance:  15,
		MinClearance: 0.5,
		FOV:          75,
	}
}

// ApplyLook turns the rig by a mouse delta.
func (r *CameraRig) ApplyLook(dx, dy float32) {
	r.Yaw -= dx * r.Sensitivity
	r.Pitch = rl.Clamp(r.Pitch+dy*r.Sensitivity, -r.PitchLimit/2, r.PitchLimit)
}

// ApplyZoom moves the rig closer or further by a wheel delta.
func (r *CameraRig) ApplyZoom(delta float32) {
	r.Distance = rl.Clamp(r.Distance+delta*r.ZoomScale, r.MinDistance, r.MaxDistance)
}

// Follow places the camera behind target according to yaw, pitch and
// distance. A camera that would dip under MinClearance is held there and
// the look-at point is raised by half of the correction.
func (r *CameraRig) Follow(target rl.Vector3) {
	offset := rl.Vector3{X: 0, Y: r.Height, Z: r.Distance}

	// Vertical rotation first, then horizontal
	offset = rl.Vector3RotateByAxisAngle(offset, rl.Vector3{X: 1}, r.Pitch)
	offset = rl.Vector3RotateByAxisAngle(offset, rl.Vector3{Y: 1}, r.Yaw)

	pos := rl.Vector3Add(target, offset)
	look := target
	if pos.Y < r.MinClearance {
		delta := r.MinClearance - pos.Y
		pos.Y = r.MinClearance
		look.Y += delta / 2
	}

	r.Position = pos
	r.Target = look
}

// Camera3D returns the raylib camera for the current rig pose.
func (r *CameraRig) Camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   r.Position,
		Target:     r.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       r.FOV,
		Projection: rl.CameraPerspective,
	}
}
