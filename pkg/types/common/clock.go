// Package common holds the small shared types consumed by every layer of
// TaskTriage-Engine.
package common

import "time"

// Clock is the injected time source used by every component that needs the
// current instant.  No engine code reads the system clock directly; passing
// a FixedClock makes classification and parsing fully deterministic under
// test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }

// NewFixedClock returns a FixedClock pinned to t.
func NewFixedClock(t time.Time) FixedClock {
	return FixedClock{Instant: t}
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
