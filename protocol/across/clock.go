package across

import (
	"sync"
	"time"
)

// Clock supplies the current protocol time in unix seconds. Injecting
// it keeps quote timestamps and deadlines reproducible.
type Clock interface {
	Now() uint32
}

type wallClock struct{}

func (wallClock) Now() uint32 {
	// nolint:gosec
	return uint32(time.Now().Unix())
}

func WallClock() Clock {
	return wallClock{}
}

// ManualClock is a settable clock for tests.
type ManualClock struct {
	mu      sync.Mutex
	current uint32
}

func NewManualClock(start uint32) *ManualClock {
	return &ManualClock{current: start}
}

func (c *ManualClock) Now() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *ManualClock) Set(t uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

func (c *ManualClock) Advance(seconds uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current += seconds
}
