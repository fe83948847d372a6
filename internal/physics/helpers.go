package physics

import rl "github.com/gen2brain/raylib-go/raylib"

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// signf returns 1 for positive values and -1 otherwise, so a character
// dead-centre on an obstacle is pushed out the negative side.
func signf(x float32) float32 {
	if x > 0 {
		return 1
	}
	return -1
}

// horizontal drops the vertical component.
func horizontal(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: 0, Z: v.Z}
}
