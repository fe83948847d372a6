package input

import "sync"

// Key identifies a level-triggered movement key.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	keyCount
)

// Snapshot is one tick's view of the player's input.
type Snapshot struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool // edge: pressed at least once since the previous tick

	MouseDX float32
	MouseDY float32
	Wheel   float32
}

// HasMovement reports whether any movement key is held.
func (s Snapshot) HasMovement() bool {
	return s.Forward || s.Back || s.Left || s.Right
}

// Accumulator buffers input events between ticks. Event sources may call
// it from any goroutine; the tick driver is the single consumer.
type Accumulator struct {
	mu    sync.Mutex
	held  [keyCount]bool
	jump  bool
	dx    float32
	dy    float32
	wheel float32
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// SetKey records the held state of a movement key. Last value wins.
func (a *Accumulator) SetKey(k Key, down bool) {
	if k < 0 || k >= keyCount {
		return
	}
	a.mu.Lock()
	a.held[k] = down
	a.mu.Unlock()
}

// PressJump latches a jump request until the next Consume.
func (a *Accumulator) PressJump() {
	a.mu.Lock()
	a.jump = true
	a.mu.Unlock()
}

// AddMouseDelta accumulates pointer movement.
func (a *Accumulator) AddMouseDelta(dx, dy float32) {
	a.mu.Lock()
	a.dx += dx
	a.dy += dy
	a.mu.Unlock()
}

// AddWheel accumulates wheel movement.
func (a *Accumulator) AddWheel(delta float32) {
	a.mu.Lock()
	a.wheel += delta
	a.mu.Unlock()
}

// ReleaseAll drops every held key, e.g. when the window loses focus.
func (a *Accumulator) ReleaseAll() {
	a.mu.Lock()
	a.held = [keyCount]bool{}
	a.mu.Unlock()
}

// Consume returns the buffered input and clears the deltas and the jump
// edge. Held keys persist until released.
func (a *Accumulator) Consume() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Snapshot{
		Forward: a.held[KeyForward],
		Back:    a.held[KeyBack],
		Left:    a.held[KeyLeft],
		Right:   a.held[KeyRight],
		Jump:    a.jump,
		MouseDX: a.dx,
		MouseDY: a.dy,
		Wheel:   a.wheel,
	}
	a.jump = false
	a.dx, a.dy, a.wheel = 0, 0, 0
	return s
}
