package world

import (
	"kickabout/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CheckPickups collects every item closer than radius to the character's
// centre and returns how many were collected by this call.
func CheckPickups(c *components.Character, items []*components.Collectible, radius float32) int {
	if c == nil {
		return 0
	}

	n := 0
	for _, item := range items {
		if item == nil || item.Collected() {
			continue
		}
		if rl.Vector3Distance(c.Position, item.Position) < radius && item.Collect() {
			n++
		}
	}
	return n
}
