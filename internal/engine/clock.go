package engine

import "time"

// Clock supplies the current instant to time-sensitive operations.
//
// The original code called the wall clock pervasively, which made recurrence
// and streak behavior untestable. Every operation that needs "now" takes it
// from an injected Clock instead; production wiring uses SystemClock and
// tests use a fixed clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}
