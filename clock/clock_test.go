package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drainSteps(c *Clock) int {
	n := 0
	for c.ConsumeStep() {
		n++
	}
	return n
}

func TestNew_Defaults(t *testing.T) {
	c := New()

	assert.Equal(t, 0.02, c.FixedDelta)
	assert.Equal(t, 1.0, c.TimeScale)
	assert.Zero(t, c.Accumulated())
	assert.Zero(t, c.Elapsed)
}

func TestConsumeStep_WholeStepsOnly(t *testing.T) {
	c := New()

	c.Advance(0.05)
	assert.Equal(t, 2, drainSteps(c), "0.05s at 0.02s steps yields exactly 2 steps")
	assert.InDelta(t, 0.01, c.Accumulated(), 1e-12, "remainder carries over")
}

func TestConsumeStep_SmallDeltaYieldsNothing(t *testing.T) {
	c := New()

	c.Advance(0.01)
	assert.Equal(t, 0, drainSteps(c))
	assert.InDelta(t, 0.01, c.Accumulated(), 1e-12)

	// A later frame tops the accumulator up past one step.
	c.Advance(0.015)
	assert.Equal(t, 1, drainSteps(c))
}

func TestConsumeStep_DeltaSpike(t *testing.T) {
	// Step size chosen exactly representable so the count is not at the
	// mercy of accumulated rounding.
	c := &Clock{FixedDelta: 0.25, TimeScale: 1.0}

	// A one-second hitch drains as 4 whole steps, never a fractional one.
	c.Advance(1.0)
	assert.Equal(t, 4, drainSteps(c))
	assert.Zero(t, c.Accumulated())
}

func TestAdvance_TimeScale(t *testing.T) {
	c := New()
	c.TimeScale = 2.0

	c.Advance(0.02)
	assert.InDelta(t, 0.04, c.Delta, 1e-12)
	assert.Equal(t, 2, drainSteps(c))

	c.TimeScale = 0
	c.Advance(10.0)
	assert.Equal(t, 0, drainSteps(c), "zero time scale pauses the simulation")
}

func TestAdvance_AccumulatesElapsed(t *testing.T) {
	c := New()

	c.Advance(0.02)
	c.Advance(0.03)
	assert.InDelta(t, 0.05, c.Elapsed, 1e-12)
}

func TestReset(t *testing.T) {
	c := New()
	c.Advance(0.123)

	c.Reset()

	assert.Zero(t, c.Accumulated())
	assert.Zero(t, c.Elapsed)
	assert.Zero(t, c.Delta)
	assert.False(t, c.ConsumeStep())
}
