package platform

import (
	"math"
	"time"
)

const doubleClickSlopPx = 4

// ClickTracker turns a stream of primary presses into double-click events.
type ClickTracker struct {
	Interval time.Duration

	last  time.Time
	lastX int
	lastY int
	armed bool
}

// Press records a primary press and reports whether it completes a
// double click. A completed double click disarms the tracker so a third
// press starts a new pair.
func (c *ClickTracker) Press(now time.Time, x, y int) bool {
	if c.armed && now.Sub(c.last) <= c.Interval && abs(x-c.lastX) <= doubleClickSlopPx && abs(y-c.lastY) <= doubleClickSlopPx {
		c.armed = false
		return true
	}
	c.armed = true
	c.last = now
	c.lastX, c.lastY = x, y
	return false
}

// WheelAccumulator converts fractional wheel offsets into whole notches.
type WheelAccumulator struct {
	acc float64
}

func (w *WheelAccumulator) Add(dy float64) int {
	if dy == 0 {
		return 0
	}
	// Reversing direction drops the remainder of the previous direction.
	if (dy > 0) != (w.acc > 0) && w.acc != 0 {
		w.acc = 0
	}
	w.acc += dy
	steps := math.Trunc(w.acc)
	w.acc -= steps
	return int(steps)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
