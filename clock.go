package soundmaker

import (
	"math"
	"sync/atomic"
)

// Clock is the engine's monotonic time source, in seconds. The render
// path advances it once per output frame; control-thread callers only
// read it, to timestamp note events consistently with render timing.
type Clock struct {
	bits atomic.Uint64
}

// Now returns the current time in seconds.
func (c *Clock) Now() float64 {
	return math.Float64frombits(c.bits.Load())
}

// Advance moves the clock forward by dt seconds. Only the render path may
// call Advance; with a single writer a load/store pair is enough.
func (c *Clock) Advance(dt float64) {
	c.bits.Store(math.Float64bits(math.Float64frombits(c.bits.Load()) + dt))
}
