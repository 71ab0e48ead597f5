package sim

import "time"

// FixedClock reports the same frame time every frame.
type FixedClock float64

func (c FixedClock) FrameTime() float64 { return float64(c) }

// ClockFunc adapts a function to Clock.
type ClockFunc func() float64

func (f ClockFunc) FrameTime() float64 { return f() }

// WallClock measures real time between successive FrameTime calls.
type WallClock struct {
	now  func() time.Time
	last time.Time
}

// NewWallClock starts timing from now.
func NewWallClock() *WallClock {
	return newWallClock(time.Now)
}

func newWallClock(now func() time.Time) *WallClock {
	return &WallClock{now: now, last: now()}
}

// FrameTime returns seconds since the previous call (or construction).
func (c *WallClock) FrameTime() float64 {
	cur := c.now()
	elapsed := cur.Sub(c.last).Seconds()
	c.last = cur
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
