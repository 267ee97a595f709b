package clock

import "time"

// Clock supplies the reference "now" for visit-history queries so they can be
// tested with injected time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// New returns a Clock backed by the system time.
func New() Clock {
	return realClock{}
}

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock {
	return fixedClock(t)
}

type fixedClock time.Time

func (f fixedClock) Now() time.Time { return time.Time(f) }
