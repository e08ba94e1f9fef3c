// ABOUTME: Counter is a 32-bit integer shared between concurrent renderers
// ABOUTME: Every operation is atomic; no ordering holds across distinct counters

package counter

import "sync/atomic"

// Counter is a thread-safe 32-bit integer. The zero value is a counter at
// 0. Increments past math.MaxInt32 wrap to math.MinInt32 on every platform.
type Counter struct {
	v atomic.Int32
}

// New returns a Counter starting at initial.
func New(initial int32) *Counter {
	c := &Counter{}
	c.v.Store(initial)
	return c
}

// GetAndIncrement adds one and returns the value held before the increment.
func (c *Counter) GetAndIncrement() int32 {
	return c.v.Add(1) - 1
}

// Get returns the current value.
func (c *Counter) Get() int32 {
	return c.v.Load()
}

// Set replaces the current value.
func (c *Counter) Set(value int32) {
	c.v.Store(value)
}
