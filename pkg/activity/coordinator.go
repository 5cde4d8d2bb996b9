package activity

import (
	"context"

	"github.com/reddit-archive/activity-service/pkg/storeclient"
)

// Coordinator is the multi-get read path: it fuses a cache lookup,
// batched miss counting, fuzzing, and a cache refill into a small,
// fixed number of round trips against the backing store.
type Coordinator struct {
	cache   Cache
	counter Counter
	fuzzer  Fuzzer
}

// NewCoordinator constructs a Coordinator from its three collaborators.
func NewCoordinator(cache Cache, counter Counter, fuzzer Fuzzer) Coordinator {
	return Coordinator{cache: cache, counter: counter, fuzzer: fuzzer}
}

// CountOne is a thin wrapper around CountMany for a single context id.
func (co Coordinator) CountOne(ctx context.Context, store storeclient.Client, contextID string) (Info, error) {
	if !ValidIdentifier(contextID) {
		return Info{}, errInvalidContextID(contextID)
	}
	results, err := co.CountMany(ctx, store, []string{contextID})
	if err != nil {
		return Info{}, err
	}
	return results[contextID], nil
}

// CountMany resolves a batch of context ids in seven steps:
//
//  1. Validate every context id; fail the entire call on the first
//     invalid one, issuing zero backing-store commands.
//  2. Probe the cache for all requested ids in one multi-get.
//  3. Compute the set of ids that missed.
//  4. Count the misses in one pipelined batch of PFCOUNT commands.
//  5. Fuzz each raw count into an Info.
//  6. Refill the cache with the newly computed Infos in one
//     pipelined batch.
//  7. Return the merged map, keyed by context id (duplicates in the
//     input collapse to one entry).
func (co Coordinator) CountMany(ctx context.Context, store storeclient.Client, contextIDs []string) (map[string]Info, error) {
	if len(contextIDs) == 0 {
		return map[string]Info{}, nil
	}

	// Deduplicate while preserving first-seen order, since the
	// result map is keyed by id and duplicate probes/counts would
	// be wasted round trips.
	seen := make(map[string]bool, len(contextIDs))
	ids := make([]string, 0, len(contextIDs))
	for _, id := range contextIDs {
		if !ValidIdentifier(id) {
			return nil, errInvalidContextID(id)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	hits, err := co.cache.GetMany(ctx, store, ids)
	if err != nil {
		return nil, err
	}

	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := hits[id]; !ok {
			missing = append(missing, id)
		}
	}

	result := make(map[string]Info, len(ids))
	for id, info := range hits {
		result[id] = info
	}

	if len(missing) == 0 {
		return result, nil
	}

	rawCounts, err := co.counter.CountMany(ctx, store, missing)
	if err != nil {
		return nil, err
	}

	refill := make(map[string]Info, len(missing))
	for i, id := range missing {
		// A negative count should never occur in practice: PFCOUNT
		// over a missing key yields 0, not null. Guard against it
		// defensively by skipping the refill and omitting the id
		// from the result rather than reporting a nonsensical
		// negative count.
		if rawCounts[i] < 0 {
			continue
		}
		info := co.fuzzer.FromCount(uint64(rawCounts[i]))
		result[id] = info
		refill[id] = info
	}

	if len(refill) > 0 {
		if err := co.cache.SetMany(ctx, store, refill); err != nil {
			return nil, err
		}
	}

	return result, nil
}
