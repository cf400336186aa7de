package loop

// Clock is the cycle time source shared between a runner and the input
// samplers bound to it. Sources read it at evaluation time so every
// sampler in one cycle observes the same instant.
type Clock struct {
	t float64
}

func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current cycle time in seconds.
func (c *Clock) Now() float64 { return c.t }

// Advance moves the clock forward by dt.
func (c *Clock) Advance(dt float64) { c.t += dt }

// Reset rewinds the clock to zero.
func (c *Clock) Reset() { c.t = 0 }
