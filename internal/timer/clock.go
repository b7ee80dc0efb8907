package timer

import "time"

// Clock provides the current instant. Readings from RealClock carry a
// monotonic component, so elapsed time survives wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
