package world

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"kickabout/internal/components"
	"kickabout/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"
)

// Vec3 is a YAML-friendly [x, y, z] triple.
type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// ObstacleSpec places a box by its size and the centre of its bottom face.
type ObstacleSpec struct {
	Size  Vec3   `yaml:"size"` // width, height, depth
	Base  Vec3   `yaml:"base"`
	Color string `yaml:"color,omitempty"`
}

func (o ObstacleSpec) Obstacle() components.Obstacle {
	return components.NewObstacleOnGround(o.Size[0], o.Size[1], o.Size[2], o.Base[0], o.Base[1], o.Base[2])
}

// RenderColor resolves the obstacle's color. Empty means the default
// brown; raylib names are tried before CSS colors.
func (o ObstacleSpec) RenderColor() (rl.Color, error) {
	if o.Color == "" {
		return defaultObstacleColor, nil
	}
	if c, ok := colorByName[o.Color]; ok {
		return c, nil
	}
	c, err := csscolorparser.Parse(o.Color)
	if err != nil {
		return defaultObstacleColor, fmt.Errorf("world: color %q: %w", o.Color, err)
	}
	r, g, b, a := c.RGBA255()
	return rl.NewColor(r, g, b, a), nil
}

// Level describes one play session: static obstacles, collectibles, where
// the character and ball start, and any tuning overrides.
type Level struct {
	Name         string         `yaml:"name"`
	Spawn        Vec3           `yaml:"spawn"`
	Ball         Vec3           `yaml:"ball"`
	Obstacles    []ObstacleSpec `yaml:"obstacles"`
	Collectibles []Vec3         `yaml:"collectibles"`
	Tuning       Tuning         `yaml:"tuning"`
}

// saddle brown
var defaultObstacleColor = rl.NewColor(0x8b, 0x45, 0x13, 0xff)

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

func baseLevel() *Level {
	return &Level{
		Name:   "untitled",
		Spawn:  Vec3{0, 1, 0},
		Ball:   Vec3{3, 0.5, 3},
		Tuning: DefaultTuning(),
	}
}

// DefaultLevel is the built-in playground: six platforms, a ball next to
// the spawn point and a ring of collectibles.
func DefaultLevel() *Level {
	l := baseLevel()
	l.Name = "playground"
	l.Obstacles = []ObstacleSpec{
		{Size: Vec3{4, 2, 4}, Base: Vec3{-8, 0, -8}},
		{Size: Vec3{3, 1, 3}, Base: Vec3{8, 0, -8}},
		{Size: Vec3{2, 3, 2}, Base: Vec3{0, 0, -12}},
		{Size: Vec3{6, 0.5, 2}, Base: Vec3{-4, 0, 4}},
		{Size: Vec3{2, 1.5, 2}, Base: Vec3{6, 0, 6}},
		{Size: Vec3{3, 2, 3}, Base: Vec3{-6, 0, 8}},
	}

	const ring = 8
	for i := range ring {
		angle := (float64(i) + 0.5) * 2 * math.Pi / ring
		l.Collectibles = append(l.Collectibles, Vec3{
			float32(math.Cos(angle)) * 12,
			1,
			float32(math.Sin(angle)) * 12,
		})
	}
	// One on top of the large and the small platform. The tall one is out
	// of jumping reach.
	l.Collectibles = append(l.Collectibles, Vec3{-8, 3, -8}, Vec3{6, 2.5, 6})

	return l
}

// ParseLevel decodes a YAML level. Omitted fields keep their defaults;
// unknown fields are an error.
func ParseLevel(data []byte) (*Level, error) {
	l := baseLevel()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(l); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("world: decode level: %w", err)
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: load level %s: %w", path, err)
	}
	l, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("world: level %s: %w", path, err)
	}
	return l, nil
}

func (l *Level) Validate() error {
	if err := l.Tuning.Validate(); err != nil {
		return fmt.Errorf("world: tuning: %w", err)
	}
	for i, o := range l.Obstacles {
		if err := o.Obstacle().Validate(); err != nil {
			return fmt.Errorf("world: obstacle %d: %w", i, err)
		}
		if _, err := o.RenderColor(); err != nil {
			return fmt.Errorf("world: obstacle %d: %w", i, err)
		}
	}

	// Standing on a box is fine, starting inside one is not
	c := l.Tuning.Character
	body := physics.NewAABBFromCenter(l.Spawn.Vector3(),
		rl.Vector3{X: 2 * c.Radius, Y: 2 * c.HalfHeight, Z: 2 * c.Radius}).Expand(-1e-3)
	for i, o := range l.BuildObstacles() {
		if body.Intersects(physics.ObstacleAABB(o)) {
			return fmt.Errorf("world: spawn %v is inside obstacle %d", l.Spawn, i)
		}
	}
	return nil
}

// BuildObstacles returns the immutable obstacle registry for a session.
func (l *Level) BuildObstacles() []components.Obstacle {
	obstacles := make([]components.Obstacle, 0, len(l.Obstacles))
	for _, o := range l.Obstacles {
		obstacles = append(obstacles, o.Obstacle())
	}
	return obstacles
}
