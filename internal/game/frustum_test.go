package game

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{Y: 1, Z: 10},
		Target:     rl.Vector3{Y: 1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}

func TestFrustumContainsCenter(t *testing.T) {
	f := viewFrustum(testCamera(), 16.0/9.0)

	tests := []struct {
		name  string
		point rl.Vector3
		want  bool
	}{
		{"ahead", rl.Vector3{Y: 1}, true},
		{"behind", rl.Vector3{Y: 1, Z: 20}, false},
		{"too close", rl.Vector3{Y: 1, Z: 9.95}, false},
		{"far left", rl.Vector3{X: -50, Y: 1}, false},
		{"far right", rl.Vector3{X: 50, Y: 1}, false},
		{"high above", rl.Vector3{Y: 40}, false},
		{"beyond far plane", rl.Vector3{Y: 1, Z: -2000}, false},
		{"wide but inside", rl.Vector3{X: 8, Y: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.containsSphere(tt.point, 0); got != tt.want {
				t.Errorf("containsSphere(%v, 0) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestFrustumSphereStraddlingEdge(t *testing.T) {
	f := viewFrustum(testCamera(), 1)

	// Vertical half angle of 30° at distance 10 puts the top edge near y=6.77
	if f.containsSphere(rl.Vector3{Y: 8}, 0) {
		t.Fatal("Point above the top edge should be outside")
	}
	if !f.containsSphere(rl.Vector3{Y: 8}, 2) {
		t.Error("Sphere reaching into view should count as visible")
	}
}
