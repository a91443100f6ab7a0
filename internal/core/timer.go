package core

import (
	"fmt"
	"math"
)

// Clock tracks simulated time for a fixed-step loop. The step size may be
// changed between ticks.
type Clock struct {
	step    float64
	elapsed float64
	ticks   int
}

// NewClock constructs a Clock advancing by dt per tick.
func NewClock(dt float64) (*Clock, error) {
	c := &Clock{}
	if err := c.SetStep(dt); err != nil {
		return nil, err
	}
	return c, nil
}

// SetStep changes the step size used by subsequent ticks.
func (c *Clock) SetStep(dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return fmt.Errorf("clock step %v: %w", dt, ErrInvalidParameter)
	}
	c.step = dt
	return nil
}

// Step returns the current step size.
func (c *Clock) Step() float64 { return c.step }

// Advance moves the clock forward by one step and returns the new time.
func (c *Clock) Advance() float64 {
	c.ticks++
	c.elapsed += c.step
	return c.elapsed
}

// Elapsed returns the simulated time since the last Reset.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// Ticks returns the number of steps taken since the last Reset.
func (c *Clock) Ticks() int { return c.ticks }

// Reset rewinds the clock to zero, keeping the step size.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.ticks = 0
}
