package components

import rl "github.com/gen2brain/raylib-go/raylib"

// Collectible is an item the character picks up by walking close to it.
// Once collected it stays collected for the rest of the session.
type Collectible struct {
	Position  rl.Vector3
	collected bool
}

func NewCollectible(pos rl.Vector3) *Collectible {
	return &Collectible{Position: pos}
}

// Collect marks the item collected. It returns false if it already was.
func (c *Collectible) Collect() bool {
	if c.collected {
		return false
	}
	c.collected = true
	return true
}

func (c *Collectible) Collected() bool {
	return c.collected
}

// Visible reports whether the item should still be drawn.
func (c *Collectible) Visible() bool {
	return !c.collected
}
