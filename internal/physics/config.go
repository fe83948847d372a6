package physics

// BallGravityScale makes the ball fall faster than the character.
const BallGravityScale = 2

// Config holds the world-level constants of the simulation. All speeds are
// per tick, not per second.
type Config struct {
	Gravity          float32 // negative, units/tick²
	GroundY          float32
	LandingTolerance float32 // depth of the band below a box top that counts as landing

	// Ball
	KickReach    float32 // character radius used for the kick test
	KickMoving   float32
	KickStanding float32
	KickLift     float32
	RestSpeed    float32 // ground bounces slower than this come to rest
	Bounds       float32 // half size of the square play area
}

func DefaultConfig() Config {
	return Config{
		Gravity:          -0.005,
		GroundY:          0,
		LandingTolerance: 0.2,
		KickReach:        1.0,
		KickMoving:       0.3,
		KickStanding:     0.15,
		KickLift:         0.1,
		RestSpeed:        0.015,
		Bounds:           49,
	}
}
