package world

import (
	"math"
	"testing"

	"kickabout/internal/components"
	"kickabout/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func emptyLevel() *Level {
	l := baseLevel()
	l.Ball = Vec3{20, 0.5, 20}
	return l
}

func TestNewDefaultLevel(t *testing.T) {
	w, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) failed: %v", err)
	}
	if !w.Ready() {
		t.Fatal("World built from the default level should be ready")
	}
	if len(w.Obstacles) != 6 {
		t.Errorf("Expected 6 obstacles, got %d", len(w.Obstacles))
	}
	if len(w.Colors) != len(w.Obstacles) {
		t.Errorf("Expected a color per obstacle, got %d", len(w.Colors))
	}
	if len(w.Collectibles) != 10 {
		t.Errorf("Expected 10 collectibles, got %d", len(w.Collectibles))
	}

	// The camera is placed before the first tick
	f := w.Frame()
	if !f.Ready || f.CameraPosition == (rl.Vector3{}) {
		t.Errorf("Expected an initial camera position, got %+v", f.CameraPosition)
	}
}

// pickUpByWalking searches approach headings, run-up lengths and jump
// timings for a way to collect item i by holding forward from the ground.
func pickUpByWalking(t *testing.T, l *Level, i int) bool {
	t.Helper()
	target := l.Collectibles[i].Vector3()

	for _, runUp := range []float32{2, 3, 4, 5, 6, 7} {
		for heading := range 16 {
			yaw := float32(heading) * math.Pi / 8
			forward, _ := components.CameraBasis(yaw)
			start := rl.Vector3Subtract(target, rl.Vector3Scale(forward, runUp))

			for _, jumpAt := range []int{-1, 0, 5, 10, 15, 20, 25, 30, 35} {
				attempt := *l
				attempt.Spawn = Vec3{start.X, 1, start.Z}
				w, err := New(&attempt)
				if err != nil {
					// Start point inside an obstacle
					continue
				}
				w.Camera.Yaw = yaw

				for tick := range 120 {
					w.Step(input.Snapshot{Forward: true, Jump: tick == jumpAt}, 0)
					if w.Collectibles[i].Collected() {
						return true
					}
				}
			}
		}
	}
	return false
}

func TestDefaultCollectiblesAreReachable(t *testing.T) {
	l := DefaultLevel()
	for i, p := range l.Collectibles {
		if !pickUpByWalking(t, l, i) {
			t.Errorf("Collectible %d at %v cannot be picked up", i, p)
		}
	}
}

func TestTallPlatformIsOutOfReach(t *testing.T) {
	l := DefaultLevel()
	l.Collectibles = []Vec3{{0, 4, -12}}
	if pickUpByWalking(t, l, 0) {
		t.Error("An item on the 3 unit platform should be out of jumping reach")
	}
}

func TestStepNotReadyIsNoOp(t *testing.T) {
	var nilWorld *World
	if f := nilWorld.Step(input.Snapshot{Forward: true}, 0); f.Ready {
		t.Error("nil world should report not ready")
	}

	w := &World{Ball: components.NewBall(rl.Vector3{Y: 5})}
	f := w.Step(input.Snapshot{Forward: true, Jump: true}, 0.016)
	if f.Ready {
		t.Error("World without a character should report not ready")
	}
	if w.Ball.Position.Y != 5 || w.tick != 0 || w.elapsed != 0 {
		t.Error("Not-ready world must not be mutated")
	}
}

func TestPickupCollectsOnce(t *testing.T) {
	l := emptyLevel()
	l.Collectibles = []Vec3{{1, 1, 0}}
	w, err := New(l)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var notified []int
	w.OnCollected.AddListener(func(total int) { notified = append(notified, total) })

	f := w.Step(input.Snapshot{}, 0)
	if f.Collected != 1 {
		t.Fatalf("Expected 1 collected after first tick, got %d", f.Collected)
	}
	if f.Visible[0] {
		t.Error("Collected item should no longer be visible")
	}

	f = w.Step(input.Snapshot{}, 0)
	if f.Collected != 1 {
		t.Errorf("Second tick must not collect again, got %d", f.Collected)
	}
	if len(notified) != 1 || notified[0] != 1 {
		t.Errorf("Expected one notification with total 1, got %v", notified)
	}
}

func TestCheckPickupsRadius(t *testing.T) {
	c := components.NewCharacter(rl.Vector3{Y: 1})
	items := []*components.Collectible{
		components.NewCollectible(rl.Vector3{X: 1.49, Y: 1}),
		components.NewCollectible(rl.Vector3{X: 1.5, Y: 1}),
		nil,
		components.NewCollectible(rl.Vector3{Z: -1, Y: 1}),
	}

	if n := CheckPickups(c, items, 1.5); n != 2 {
		t.Errorf("Expected 2 pickups, got %d", n)
	}
	if items[1].Collected() {
		t.Error("Item exactly at the radius should not be collected")
	}
	if n := CheckPickups(c, items, 1.5); n != 0 {
		t.Errorf("Expected no repeat pickups, got %d", n)
	}
	if n := CheckPickups(nil, items, 10); n != 0 {
		t.Errorf("nil character should collect nothing, got %d", n)
	}
}

func TestStepJumpLeavesGround(t *testing.T) {
	w, err := New(emptyLevel())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	w.Step(input.Snapshot{Jump: true}, 0)
	if !approx(w.Character.VelocityY, 0.15, 1e-6) {
		t.Fatalf("Expected jump velocity 0.15, got %v", w.Character.VelocityY)
	}

	f := w.Step(input.Snapshot{}, 0)
	if f.Grounded {
		t.Error("Character should be airborne after a jump")
	}
	if !approx(f.CharacterPosition.Y, 1.145, 1e-5) {
		t.Errorf("Expected y 1.145, got %v", f.CharacterPosition.Y)
	}
}

func TestStepWalksRelativeToCamera(t *testing.T) {
	w, err := New(emptyLevel())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var f Frame
	for range 10 {
		f = w.Step(input.Snapshot{Forward: true}, 0)
	}
	if !f.Walking {
		t.Error("Expected walking flag")
	}
	if !approx(f.CharacterPosition.Z, -1, 1e-4) || !approx(f.CharacterPosition.X, 0, 1e-4) {
		t.Errorf("Expected to walk to z=-1, got %+v", f.CharacterPosition)
	}
	// Camera trails behind on +Z
	if f.CameraPosition.Z <= f.CharacterPosition.Z {
		t.Errorf("Camera should be behind the character, got %+v", f.CameraPosition)
	}
	if f.Tick != 10 || !approx(f.Elapsed, 10*NominalTimestep, 1e-5) {
		t.Errorf("Expected tick 10 and nominal elapsed time, got %d %v", f.Tick, f.Elapsed)
	}
}

func TestStepKicksBall(t *testing.T) {
	l := emptyLevel()
	l.Ball = Vec3{1.2, 0.5, 0}
	w, err := New(l)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	kicks := 0
	w.OnKicked.AddListener(func() { kicks++ })

	f := w.Step(input.Snapshot{}, 0)
	if !f.BallEvent.Kicked {
		t.Fatal("Expected the ball to be kicked")
	}
	if kicks != 1 {
		t.Errorf("Expected one kick notification, got %d", kicks)
	}
	if !approx(w.Ball.Velocity.X, 0.15, 1e-6) || !approx(w.Ball.Velocity.Y, 0.1, 1e-6) {
		t.Errorf("Expected standing kick (0.15, 0.1), got %+v", w.Ball.Velocity)
	}
}

func TestStepLookAndZoom(t *testing.T) {
	w, err := New(emptyLevel())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	w.Step(input.Snapshot{MouseDX: 100, Wheel: 100}, 0)
	if !approx(w.Camera.Yaw, -0.2, 1e-6) {
		t.Errorf("Expected yaw -0.2, got %v", w.Camera.Yaw)
	}
	if !approx(w.Camera.Distance, 9, 1e-6) {
		t.Errorf("Expected distance 9, got %v", w.Camera.Distance)
	}
}

func TestCollectibleSpin(t *testing.T) {
	w, err := New(emptyLevel())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	f := w.Step(input.Snapshot{}, 0.5)
	if !approx(f.CollectibleSpin, 1, 1e-5) {
		t.Errorf("Expected spin 1 rad after 0.5s, got %v", f.CollectibleSpin)
	}
	for range 4 {
		f = w.Step(input.Snapshot{}, 1)
	}
	if f.CollectibleSpin < 0 || f.CollectibleSpin >= 2*math.Pi {
		t.Errorf("Spin should wrap into [0, 2π), got %v", f.CollectibleSpin)
	}
}

func TestStepReportsLanding(t *testing.T) {
	l := emptyLevel()
	l.Obstacles = []ObstacleSpec{{Size: Vec3{4, 2, 4}}}
	l.Spawn = Vec3{0, 5, 0}
	w, err := New(l)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	landings := 0
	w.OnLanded.AddListener(func() { landings++ })

	var f Frame
	for range 60 {
		f = w.Step(input.Snapshot{}, 0)
	}
	if landings != 1 {
		t.Errorf("Expected one landing, got %d", landings)
	}
	if !f.Contact.Landed || f.Contact.Pushed || f.CharacterPosition.Y != 3 {
		t.Errorf("Expected to rest on the box top, got %+v at y=%v", f.Contact, f.CharacterPosition.Y)
	}

	// Jumping and coming back down counts again
	w.Step(input.Snapshot{Jump: true}, 0)
	for range 70 {
		w.Step(input.Snapshot{}, 0)
	}
	if landings != 2 {
		t.Errorf("Expected a second landing after the jump, got %d", landings)
	}
}

func TestStepWalkingInTheOpenHasNoContact(t *testing.T) {
	w, err := New(emptyLevel())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for range 30 {
		f := w.Step(input.Snapshot{Forward: true, Left: true}, 0)
		if f.Contact.Landed || f.Contact.Pushed {
			t.Fatalf("Tick %d: unexpected collision response %+v", f.Tick, f.Contact)
		}
		if !f.Contact.Floor {
			t.Fatalf("Tick %d: expected to stay on the floor", f.Tick)
		}
	}
}
