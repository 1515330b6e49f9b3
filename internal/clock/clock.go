package clock

import (
	"errors"
	"math"
	"sync/atomic"
)

// Sentinel is the value a Clock starts at. Advance never returns it.
const Sentinel uint64 = 0

// ErrExhausted is the panic value raised by Advance once the counter has
// handed out math.MaxUint64. Wrapping around would hand out the sentinel
// and then repeat old values, so the clock refuses to move instead.
var ErrExhausted = errors.New("clock: counter exhausted")

// Clock is a monotonically increasing counter.
// The zero value is ready to use and is safe for concurrent use.
type Clock struct {
	n atomic.Uint64
}

// Advance moves the counter forward by exactly one and returns the new value.
// Concurrent callers never observe the same value.
func (c *Clock) Advance() uint64 {
	for {
		cur := c.n.Load()
		if cur == math.MaxUint64 {
			panic(ErrExhausted)
		}
		if c.n.CompareAndSwap(cur, cur+1) {
			return cur + 1
		}
	}
}

var global Clock

// Advance advances the process-wide clock.
func Advance() uint64 {
	return global.Advance()
}
