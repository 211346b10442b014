package ports

import "time"

// Clock abstracts the wall clock so command handlers and jobs stay
// deterministic under test.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}
