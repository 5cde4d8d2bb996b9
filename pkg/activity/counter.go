package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/reddit-archive/activity-service/pkg/storeclient"
)

// Counter is the HLL-slice rotation engine: it writes to the current
// slice and reads by merging the last SliceCount slices, relying on
// per-key TTLs to let old slices self-evict.
type Counter struct {
	sliceClock SliceClock
	sliceCount int
}

// NewCounter constructs a Counter for the given activity window. The
// window must be an exact multiple of SliceLength seconds; otherwise
// this is a ConfigurationError.
func NewCounter(sliceClock SliceClock, activityWindow time.Duration) (Counter, error) {
	windowSeconds := int64(activityWindow / time.Second)
	if windowSeconds <= 0 || windowSeconds%SliceLength != 0 {
		return Counter{}, fmt.Errorf("activity window %s is not a positive exact multiple of %ds", activityWindow, SliceLength)
	}
	return Counter{
		sliceClock: sliceClock,
		sliceCount: int(windowSeconds / SliceLength),
	}, nil
}

// SliceCount returns the number of 15-second slices merged on every
// read, i.e. ActivityWindow / SliceLength.
func (c Counter) SliceCount() int {
	return c.sliceCount
}

// Record adds visitorID to the HyperLogLog for contextID's current
// slice and sets that slice's expiration so it self-evicts one slice
// after it falls out of the window. Both commands are issued as a
// single pipelined round trip.
func (c Counter) Record(ctx context.Context, store storeclient.Client, contextID, visitorID string) error {
	current := c.sliceClock.Current()
	key := sliceKey(contextID, current, 0)
	expiration := time.Unix((int64(current)+int64(c.sliceCount)+1)*SliceLength, 0)

	batch := store.NewBatch(ctx)
	batch.PFAdd(key, visitorID)
	batch.ExpireAt(key, expiration)
	return batch.Execute(ctx)
}

// Count merges the HyperLogLogs for contextID's most recent
// SliceCount slices (current slice down through current-(SliceCount-1),
// newest first) and returns the merged cardinality as a single
// multi-key PFCOUNT round trip.
func (c Counter) Count(ctx context.Context, store storeclient.Client, contextID string) (int64, error) {
	keys := c.keysFor(contextID)
	return store.PFCount(ctx, keys...)
}

// CountMany merges the HyperLogLogs for each of the given context ids
// in a single pipelined round trip (one PFCOUNT command per id), used
// by the coordinator's batched miss-count step. The returned slice is
// positionally aligned with contextIDs.
func (c Counter) CountMany(ctx context.Context, store storeclient.Client, contextIDs []string) ([]int64, error) {
	if len(contextIDs) == 0 {
		return nil, nil
	}
	batch := store.NewBatch(ctx)
	results := make([]storeclient.IntResult, len(contextIDs))
	for i, id := range contextIDs {
		results[i] = batch.PFCount(c.keysFor(id)...)
	}
	if err := batch.Execute(ctx); err != nil {
		return nil, err
	}
	counts := make([]int64, len(contextIDs))
	for i, r := range results {
		count, err := r.Result()
		if err != nil {
			return nil, err
		}
		counts[i] = count
	}
	return counts, nil
}

// keysFor returns the SliceCount keys covering contextID's window,
// in descending slice order (newest first).
func (c Counter) keysFor(contextID string) []string {
	current := c.sliceClock.Current()
	keys := make([]string, c.sliceCount)
	for i := 0; i < c.sliceCount; i++ {
		keys[i] = sliceKey(contextID, current, -i)
	}
	return keys
}
