package clock

import "time"

// Clock supplies the current instant. Every place in the service that
// needs "now" takes a Clock so tests can pin time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func NewSystem() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed struct {
	instant time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{instant: t}
}

func (f *Fixed) Now() time.Time {
	return f.instant
}

// Set moves the fixed clock to a new instant.
func (f *Fixed) Set(t time.Time) {
	f.instant = t
}
