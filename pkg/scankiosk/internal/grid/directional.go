package grid

import (
	"time"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks held arrow keys and handles repeat timing.
type DirectionalInput struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 120ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 120*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetHeld updates the held state for an arrow key.
// Returns true if key was an arrow key.
func (d *DirectionalInput) SetHeld(key string, held bool) bool {
	var slot *bool
	switch key {
	case constants.KeyArrowUp:
		slot = &d.held.up
	case constants.KeyArrowDown:
		slot = &d.held.down
	case constants.KeyArrowLeft:
		slot = &d.held.left
	case constants.KeyArrowRight:
		slot = &d.held.right
	default:
		return false
	}

	*slot = held
	if held {
		d.lastRepeatTime = d.now()
	}
	d.hasRepeated = false
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.up || d.held.down || d.held.left || d.held.right
}

// HeldDirection returns the currently held direction.
// If multiple directions are held, priority is: up, down, left, right.
// Returns DirectionNone if no direction is held.
func (d *DirectionalInput) HeldDirection() Direction {
	if d.held.up {
		return DirectionUp
	}
	if d.held.down {
		return DirectionDown
	}
	if d.held.left {
		return DirectionLeft
	}
	if d.held.right {
		return DirectionRight
	}
	return DirectionNone
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. It returns the direction that should be processed,
// or DirectionNone if no repeat should occur.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update() Direction {
	now := d.now()
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.up = false
	d.held.down = false
	d.held.left = false
	d.held.right = false
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

// DirectionForKey returns the direction of an arrow key, or DirectionNone.
func DirectionForKey(key string) Direction {
	switch key {
	case constants.KeyArrowUp:
		return DirectionUp
	case constants.KeyArrowDown:
		return DirectionDown
	case constants.KeyArrowLeft:
		return DirectionLeft
	case constants.KeyArrowRight:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// Move returns the tile index reached from index by one step in dir on a grid
// of count tiles laid out in cols columns. Movement stops at the edges.
// A negative index (no focus yet) moves to the first tile.
func Move(index int, dir Direction, count, cols int) int {
	if count <= 0 {
		return -1
	}
	if cols <= 0 {
		cols = 1
	}
	if index < 0 || index >= count {
		return 0
	}

	switch dir {
	case DirectionUp:
		if index-cols >= 0 {
			return index - cols
		}
	case DirectionDown:
		if index+cols < count {
			return index + cols
		}
		// Drop onto the last tile of a short final row.
		if lastRow := (count - 1) / cols; index/cols < lastRow {
			return count - 1
		}
	case DirectionLeft:
		if index%cols > 0 {
			return index - 1
		}
	case DirectionRight:
		if index%cols < cols-1 && index+1 < count {
			return index + 1
		}
	}
	return index
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
