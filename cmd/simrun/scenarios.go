package main

import (
	"fmt"

	"kickabout/internal/input"
	"kickabout/internal/world"
)

func idle(int) input.Snapshot { return input.Snapshot{} }

func openField() *world.Level {
	l, _ := world.ParseLevel(nil)
	l.Ball = world.Vec3{20, 0.5, 20}
	return l
}

func scenarios(levelPath string) []scenario {
	return []scenario{
		{
			name: "walk",
			level: func() (*world.Level, error) {
				return world.DefaultLevel(), nil
			},
			// Six units diagonally, short of the large platform
			input: func(tick int) input.Snapshot {
				return input.Snapshot{Forward: tick < 60, Left: tick < 60}
			},
			each: func(f world.Frame) error {
				if f.Contact.Landed || f.Contact.Pushed {
					return fmt.Errorf("tick %d: unexpected collision response %+v", f.Tick, f.Contact)
				}
				return nil
			},
			check: func(f world.Frame) error {
				if !f.Grounded || f.CharacterPosition.Y != 1 {
					return fmt.Errorf("expected to stay on the ground, got y=%.3f", f.CharacterPosition.Y)
				}
				return nil
			},
		},
		{
			name: "land",
			level: func() (*world.Level, error) {
				l := world.DefaultLevel()
				l.Spawn = world.Vec3{-8, 5, -8}
				return l, nil
			},
			input: idle,
			check: func(f world.Frame) error {
				if !f.Grounded || f.CharacterPosition.Y != 3 {
					return fmt.Errorf("expected to rest on the platform at y=3, got y=%.3f", f.CharacterPosition.Y)
				}
				return nil
			},
		},
		{
			name: "pickup",
			level: func() (*world.Level, error) {
				l := openField()
				l.Collectibles = []world.Vec3{{1, 1, 0}, {0, 1, -6}}
				return l, nil
			},
			input: func(tick int) input.Snapshot {
				return input.Snapshot{Forward: tick >= 10}
			},
			check: func(f world.Frame) error {
				if f.Collected != 2 {
					return fmt.Errorf("expected 2 collected, got %d", f.Collected)
				}
				return nil
			},
		},
		{
			name: "kick",
			level: func() (*world.Level, error) {
				l := openField()
				l.Ball = world.Vec3{0, 0.5, -3}
				return l, nil
			},
			input: func(tick int) input.Snapshot {
				return input.Snapshot{Forward: tick < 20}
			},
			check: func(f world.Frame) error {
				if f.BallPosition.Z > -4 {
					return fmt.Errorf("expected the ball to travel away, got z=%.2f", f.BallPosition.Z)
				}
				return nil
			},
		},
		{
			name: "roam",
			level: func() (*world.Level, error) {
				if levelPath == "" {
					return world.DefaultLevel(), nil
				}
				return world.LoadLevel(levelPath)
			},
			input: roam,
		},
	}
}

// roam walks a slow square while sweeping the camera and hopping now and
// then.
func roam(tick int) input.Snapshot {
	in := input.Snapshot{Forward: true, MouseDX: 4}
	switch (tick / 60) % 4 {
	case 1:
		in.Right = true
	case 2:
		in.Back = true
	case 3:
		in.Left = true
	}
	in.Jump = tick%90 == 45
	return in
}
