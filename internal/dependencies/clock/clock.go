package clock

import "time"

// Clock abstracts time lookup so game timestamps can be pinned in tests
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New returns the production RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now reports the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}
