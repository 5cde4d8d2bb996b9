// Package clock provides an injectable source of wall-clock time.
//
// Components that need to know the current time (the activity
// package's Slice Clock, most notably) take a Clock as a constructor
// argument instead of calling time.Now() directly, so that tests can
// pin time to a fixed value.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns the real wall-clock time.
func (systemClock) Now() time.Time {
	return time.Now()
}

// System is the Clock implementation used outside of tests.
var System Clock = systemClock{}

// Mock is a Clock that always returns a fixed point in time. Tests
// construct one directly with a literal time.Time or with FromUnix.
type Mock struct {
	T time.Time
}

// Now returns the fixed time the Mock was constructed with.
func (m Mock) Now() time.Time {
	return m.T
}

// FromUnix constructs a Mock clock pinned to the given Unix timestamp,
// matching the way spec fixtures express time (e.g. "now = 1202").
func FromUnix(seconds int64) Mock {
	return Mock{T: time.Unix(seconds, 0).UTC()}
}
