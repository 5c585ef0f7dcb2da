// Package clock converts variable wall-clock frame deltas into a whole
// number of fixed-size physics steps.
//
// The host frame loop calls Advance once per frame, then drains steps:
//
//	c.Advance(frameDelta)
//	for c.ConsumeStep() {
//		engine.Step(store, c.FixedDelta)
//	}
//
// A frame runs zero, one, or several steps, never a fractional one, so
// the simulation always advances in constant-size increments no matter
// how the render frame rate jitters.
package clock

// DefaultFixedDelta is the default physics step size, 50 steps per second.
const DefaultFixedDelta = 0.02

// Clock accumulates unsimulated time and hands it out in fixed steps.
type Clock struct {
	// FixedDelta is the constant step size in seconds.
	FixedDelta float64
	// TimeScale multiplies incoming wall time. 0 pauses, 2 doubles speed.
	TimeScale float64

	// Elapsed is total scaled time fed in since the last Reset.
	Elapsed float64
	// Delta is the scaled delta of the most recent Advance call.
	Delta float64

	accumulator float64
}

// New creates a clock with the default step size and a time scale of 1.
func New() *Clock {
	return &Clock{
		FixedDelta: DefaultFixedDelta,
		TimeScale:  1.0,
	}
}

// Advance feeds one frame's wall-clock delta into the accumulator,
// scaled by TimeScale.
func (c *Clock) Advance(wallDelta float64) {
	c.Delta = wallDelta * c.TimeScale
	c.Elapsed += c.Delta
	c.accumulator += c.Delta
}

// ConsumeStep reports whether a whole fixed step is available, and if so
// subtracts it from the accumulator. The caller runs exactly one physics
// step per true return.
func (c *Clock) ConsumeStep() bool {
	if c.accumulator >= c.FixedDelta {
		c.accumulator -= c.FixedDelta
		return true
	}
	return false
}

// Accumulated returns the unsimulated remainder currently held.
func (c *Clock) Accumulated() float64 {
	return c.accumulator
}

// Reset zeroes the accumulator and elapsed time. Used when toggling
// play mode so a stale accumulator cannot burst steps on re-entry.
func (c *Clock) Reset() {
	c.Elapsed = 0
	c.Delta = 0
	c.accumulator = 0
}
