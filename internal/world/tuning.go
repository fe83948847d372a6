package world

import (
	"errors"
	"fmt"
	"math"

	"kickabout/internal/components"
	"kickabout/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrInvalidTuning = errors.New("invalid tuning")

type CharacterTuning struct {
	HalfHeight float32 `yaml:"half_height"`
	Radius     float32 `yaml:"radius"`
	MoveSpeed  float32 `yaml:"move_speed"`
	JumpForce  float32 `yaml:"jump_force"`
	TurnLerp   float32 `yaml:"turn_lerp"`
}

type CameraTuning struct {
	Height       float32 `yaml:"height"`
	Distance     float32 `yaml:"distance"`
	MinDistance  float32 `yaml:"min_distance"`
	MaxDistance  float32 `yaml:"max_distance"`
	PitchLimit   float32 `yaml:"pitch_limit"`
	Sensitivity  float32 `yaml:"sensitivity"`
	ZoomScale    float32 `yaml:"zoom_scale"`
	MinClearance float32 `yaml:"min_clearance"`
	FOV          float32 `yaml:"fov"`
}

type BallTuning struct {
	Radius       float32 `yaml:"radius"`
	Friction     float32 `yaml:"friction"`
	Bounce       float32 `yaml:"bounce"`
	KickReach    float32 `yaml:"kick_reach"`
	KickMoving   float32 `yaml:"kick_moving"`
	KickStanding float32 `yaml:"kick_standing"`
	KickLift     float32 `yaml:"kick_lift"`
	RestSpeed    float32 `yaml:"rest_speed"`
}

// Tuning gathers every gameplay constant. Speeds are per tick.
type Tuning struct {
	Gravity          float32 `yaml:"gravity"`
	LandingTolerance float32 `yaml:"landing_tolerance"`
	Bounds           float32 `yaml:"bounds"`
	PickupRadius     float32 `yaml:"pickup_radius"`
	SpinSpeed        float32 `yaml:"spin_speed"` // collectible spin, radians per second

	Character CharacterTuning `yaml:"character"`
	Camera    CameraTuning    `yaml:"camera"`
	Ball      BallTuning      `yaml:"ball"`
}

// DefaultTuning returns the constants the components and physics ship with.
func DefaultTuning() Tuning {
	cfg := physics.DefaultConfig()
	c := components.NewCharacter(rl.Vector3{})
	r := components.NewCameraRig()
	b := components.NewBall(rl.Vector3{})

	return Tuning{
		Gravity:          cfg.Gravity,
		LandingTolerance: cfg.LandingTolerance,
		Bounds:           cfg.Bounds,
		PickupRadius:     1.5,
		SpinSpeed:        2,
		Character: CharacterTuning{
			HalfHeight: c.HalfHeight,
			Radius:     c.Radius,
			MoveSpeed:  c.MoveSpeed,
			JumpForce:  c.JumpForce,
			TurnLerp:   c.TurnLerp,
		},
		Camera: CameraTuning{
			Height:       r.Height,
			Distance:     r.Distance,
			MinDistance:  r.MinDistance,
			MaxDistance:  r.MaxDistance,
			PitchLimit:   r.PitchLimit,
			Sensitivity:  r.Sensitivity,
			ZoomScale:    r.ZoomScale,
			MinClearance: r.MinClearance,
			FOV:          r.FOV,
		},
		Ball: BallTuning{
			Radius:       b.Radius,
			Friction:     b.Friction,
			Bounce:       b.Bounce,
			KickReach:    cfg.KickReach,
			KickMoving:   cfg.KickMoving,
			KickStanding: cfg.KickStanding,
			KickLift:     cfg.KickLift,
			RestSpeed:    cfg.RestSpeed,
		},
	}
}

func (t Tuning) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{t.Gravity < 0, "gravity must be negative"},
		{t.LandingTolerance > 0, "landing_tolerance must be positive"},
		{t.Bounds > 0, "bounds must be positive"},
		{t.PickupRadius > 0, "pickup_radius must be positive"},
		{t.SpinSpeed >= 0, "spin_speed must not be negative"},

		{t.Character.HalfHeight > 0, "character.half_height must be positive"},
		{t.Character.Radius > 0, "character.radius must be positive"},
		{t.Character.MoveSpeed >= 0, "character.move_speed must not be negative"},
		{t.Character.JumpForce >= 0, "character.jump_force must not be negative"},
		{t.Character.TurnLerp > 0 && t.Character.TurnLerp <= 1, "character.turn_lerp must be in (0, 1]"},

		{t.Camera.MinDistance > 0, "camera.min_distance must be positive"},
		{t.Camera.MinDistance <= t.Camera.MaxDistance, "camera.min_distance exceeds max_distance"},
		{t.Camera.Distance >= t.Camera.MinDistance && t.Camera.Distance <= t.Camera.MaxDistance, "camera.distance outside zoom range"},
		{t.Camera.PitchLimit > 0 && t.Camera.PitchLimit < math.Pi/2, "camera.pitch_limit must be in (0, pi/2)"},
		{t.Camera.Sensitivity > 0, "camera.sensitivity must be positive"},
		{t.Camera.ZoomScale >= 0, "camera.zoom_scale must not be negative"},
		{t.Camera.MinClearance >= 0, "camera.min_clearance must not be negative"},
		{t.Camera.FOV > 0 && t.Camera.FOV < 180, "camera.fov must be in (0, 180)"},

		{t.Ball.Radius > 0, "ball.radius must be positive"},
		{t.Ball.Friction >= 0 && t.Ball.Friction <= 1, "ball.friction must be in [0, 1]"},
		{t.Ball.Bounce >= 0 && t.Ball.Bounce <= 1, "ball.bounce must be in [0, 1]"},
		{t.Ball.KickReach > 0, "ball.kick_reach must be positive"},
		{t.Ball.RestSpeed >= 0, "ball.rest_speed must not be negative"},
	}

	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidTuning, c.msg)
		}
	}
	return nil
}

// Physics returns the world-level constants for the physics package.
func (t Tuning) Physics() physics.Config {
	cfg := physics.DefaultConfig()
	cfg.Gravity = t.Gravity
	cfg.LandingTolerance = t.LandingTolerance
	cfg.Bounds = t.Bounds
	cfg.KickReach = t.Ball.KickReach
	cfg.KickMoving = t.Ball.KickMoving
	cfg.KickStanding = t.Ball.KickStanding
	cfg.KickLift = t.Ball.KickLift
	cfg.RestSpeed = t.Ball.RestSpeed
	return cfg
}

func (t Tuning) newCharacter(pos rl.Vector3) *components.Character {
	c := components.NewCharacter(pos)
	c.HalfHeight = t.Character.HalfHeight
	c.Radius = t.Character.Radius
	c.MoveSpeed = t.Character.MoveSpeed
	c.JumpForce = t.Character.JumpForce
	c.TurnLerp = t.Character.TurnLerp
	return c
}

func (t Tuning) newCameraRig() *components.CameraRig {
	r := components.NewCameraRig()
	r.Height = t.Camera.Height
	r.Distance = t.Camera.Distance
	r.MinDistance = t.Camera.MinDistance
	r.MaxDistance = t.Camera.MaxDistance
	r.PitchLimit = t.Camera.PitchLimit
	r.Sensitivity = t.Camera.Sensitivity
	r.ZoomScale = t.Camera.ZoomScale
	r.MinClearance = t.Camera.MinClearance
	r.FOV = t.Camera.FOV
	return r
}

func (t Tuning) newBall(pos rl.Vector3) *components.Ball {
	b := components.NewBall(pos)
	b.Radius = t.Ball.Radius
	b.Friction = t.Ball.Friction
	b.Bounce = t.Ball.Bounce
	return b
}
