package activity

import (
	"github.com/reddit-archive/activity-service/pkg/clock"
)

// SliceLength is the width, in seconds, of a single HyperLogLog slice.
const SliceLength = 15

// SliceIndex identifies a 15-second bucket of wall-clock time.
type SliceIndex int64

// SliceClock maps wall-clock time to the current SliceIndex.
type SliceClock struct {
	clock clock.Clock
}

// NewSliceClock constructs a SliceClock backed by the given Clock.
func NewSliceClock(c clock.Clock) SliceClock {
	return SliceClock{clock: c}
}

// Current returns floor(now_unix_seconds / SliceLength).
func (s SliceClock) Current() SliceIndex {
	return SliceIndex(s.clock.Now().Unix() / SliceLength)
}
