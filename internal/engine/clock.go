package engine

import "sync/atomic"

// Clock is a monotonic logical clock stamping every enqueued pulse with a
// strictly increasing sequence number.
//
// The sequence doubles as the total pulse count: after any number of
// presses, Current() equals the number of pulses ever enqueued, which is
// what the tally-conservation property checks against.
type Clock struct {
	seq atomic.Uint64
}

// NewClock creates a clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock starting at a specific sequence number.
func NewClockAt(start uint64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and advances the clock.
func (c *Clock) Next() uint64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without advancing.
func (c *Clock) Current() uint64 {
	return c.seq.Load()
}
