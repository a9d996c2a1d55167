package game

import "time"

// maxCatchUp caps the ticks run for a single frame after a stall.
const maxCatchUp = 4

// Clock turns elapsed wall time into a whole number of fixed ticks.
type Clock struct {
	interval time.Duration
	acc      time.Duration
}

// NewClock creates a clock that ticks once per interval.
func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Advance adds elapsed time and returns how many ticks are due. After a long
// stall at most maxCatchUp ticks are returned and the backlog is dropped.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	n := int(c.acc / c.interval)
	c.acc -= time.Duration(n) * c.interval
	if n > maxCatchUp {
		n = maxCatchUp
		c.acc = 0
	}
	return n
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}

// Interval returns the tick length.
func (c *Clock) Interval() time.Duration {
	return c.interval
}
