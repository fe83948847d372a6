package world

import (
	"math"

	"kickabout/internal/components"
	"kickabout/internal/engine"
	"kickabout/internal/input"
	"kickabout/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NominalTimestep is the tick length assumed when Step is given no dt.
const NominalTimestep float32 = 1.0 / 60

// World owns one play session. All simulation state lives here; Step is the
// only thing that advances it.
type World struct {
	Name         string
	Character    *components.Character
	Camera       *components.CameraRig
	Ball         *components.Ball
	Obstacles    []components.Obstacle
	Colors       []rl.Color // render color per obstacle
	Collectibles []*components.Collectible
	Tuning       Tuning

	// OnCollected fires with the new total whenever items are picked up
	OnCollected engine.EventWithArg[int]
	// OnLanded fires when the character touches down after being airborne
	OnLanded    engine.Event
	OnKicked    engine.Event

	physics   physics.Config
	collected int
	walking   bool
	elapsed   float32
	tick      uint64
	contact   physics.Contact
	lastBall  physics.BallEvent
}

// Frame is what a renderer needs to draw one tick.
type Frame struct {
	Ready   bool
	Tick    uint64
	Elapsed float32 // seconds

	CharacterPosition rl.Vector3
	CharacterYaw      float32
	Walking           bool
	Grounded          bool
	Contact           physics.Contact

	CameraPosition rl.Vector3
	CameraTarget   rl.Vector3

	BallPosition rl.Vector3
	BallEvent    physics.BallEvent

	Collected       int
	Visible         []bool
	CollectibleSpin float32 // radians
}

// New builds a session from a level. A nil level means DefaultLevel.
func New(level *Level) (*World, error) {
	if level == nil {
		level = DefaultLevel()
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	t := level.Tuning
	w := &World{
		Name:      level.Name,
		Character: t.newCharacter(level.Spawn.Vector3()),
		Camera:    t.newCameraRig(),
		Ball:      t.newBall(level.Ball.Vector3()),
		Obstacles: level.BuildObstacles(),
		Tuning:    t,
		physics:   t.Physics(),
	}
	for _, o := range level.Obstacles {
		c, _ := o.RenderColor()
		w.Colors = append(w.Colors, c)
	}
	for _, p := range level.Collectibles {
		w.Collectibles = append(w.Collectibles, components.NewCollectible(p.Vector3()))
	}

	w.Camera.Follow(w.Character.Position)
	return w, nil
}

// Ready reports whether every entity the tick needs exists.
func (w *World) Ready() bool {
	return w != nil && w.Character != nil && w.Camera != nil && w.Ball != nil
}

func (w *World) Collected() int {
	if w == nil {
		return 0
	}
	return w.collected
}

// Step advances the session by one tick. dt only drives elapsed time; the
// simulation itself moves in fixed per-tick units. A world that is not
// ready is left untouched.
func (w *World) Step(in input.Snapshot, dt float32) Frame {
	if !w.Ready() {
		return Frame{}
	}
	if dt <= 0 {
		dt = NominalTimestep
	}
	w.tick++
	w.elapsed += dt

	airborne := !w.Character.Grounded
	physics.IntegrateCharacter(w.Character, w.physics)
	w.contact = physics.ResolveCharacter(w.Character, w.Obstacles, w.physics)
	if airborne && w.Character.Grounded {
		w.OnLanded.Invoke()
	}

	w.walking = w.Character.Locomote(in, w.Camera.Yaw)
	if in.Jump {
		w.Character.Jump()
	}

	w.Camera.ApplyLook(in.MouseDX, in.MouseDY)
	w.Camera.ApplyZoom(in.Wheel)
	w.Camera.Follow(w.Character.Position)

	w.lastBall = physics.StepBall(w.Ball, w.Character, w.walking, w.Obstacles, w.physics)
	if w.lastBall.Kicked {
		w.OnKicked.Invoke()
	}

	if n := CheckPickups(w.Character, w.Collectibles, w.Tuning.PickupRadius); n > 0 {
		w.collected += n
		w.OnCollected.Invoke(w.collected)
	}

	return w.Frame()
}

// Frame reports the current state without advancing it.
func (w *World) Frame() Frame {
	if !w.Ready() {
		return Frame{}
	}

	visible := make([]bool, len(w.Collectibles))
	for i, c := range w.Collectibles {
		visible[i] = c.Visible()
	}

	spin := math.Mod(float64(w.elapsed*w.Tuning.SpinSpeed), 2*math.Pi)

	return Frame{
		Ready:             true,
		Tick:              w.tick,
		Elapsed:           w.elapsed,
		CharacterPosition: w.Character.Position,
		CharacterYaw:      w.Character.Yaw,
		Walking:           w.walking,
		Grounded:          w.Character.Grounded,
		Contact:           w.contact,
		CameraPosition:    w.Camera.Position,
		CameraTarget:      w.Camera.Target,
		BallPosition:      w.Ball.Position,
		BallEvent:         w.lastBall,
		Collected:         w.collected,
		Visible:           visible,
		CollectibleSpin:   float32(spin),
	}
}
