package activity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reddit-archive/activity-service/pkg/activity"
	"github.com/reddit-archive/activity-service/pkg/rng"
)

func TestFuzzerFuzzedIfSmall(t *testing.T) {
	// fuzz_threshold=100, count=99, RNG returns 3 -> {102, true}.
	fuzzer := activity.NewFuzzer(100, rng.Fixed(3))
	info := fuzzer.FromCount(99)
	require.Equal(t, uint64(102), info.Count)
	require.True(t, info.IsFuzzed)
}

func TestFuzzerNotFuzzedIfLarge(t *testing.T) {
	// fuzz_threshold=100, count=101 -> {101, false}, regardless of
	// what the RNG would return.
	fuzzer := activity.NewFuzzer(100, rng.Fixed(3))
	info := fuzzer.FromCount(101)
	require.Equal(t, uint64(101), info.Count)
	require.False(t, info.IsFuzzed)
}

func TestFuzzerAtThresholdIsExact(t *testing.T) {
	// Invariant 1: count >= fuzz_threshold always reports exactly.
	fuzzer := activity.NewFuzzer(100, rng.Fixed(0))
	info := fuzzer.FromCount(100)
	require.Equal(t, uint64(100), info.Count)
	require.False(t, info.IsFuzzed)
}

func TestFuzzerRangeOfFuzzing(t *testing.T) {
	// 1000 samples of from_count(100, 10) must all land in [10, 14]
	// under this repo's round-half-away-from-zero rounding mode.
	for seed := 0; seed < 1000; seed++ {
		source := rng.New(uint64(seed + 1))
		fuzzer := activity.NewFuzzer(100, source)
		info := fuzzer.FromCount(10)
		require.True(t, info.Count >= 10, "count should never decrease")
		require.LessOrEqual(t, info.Count, uint64(14))
		require.True(t, info.IsFuzzed)
	}
}

func TestFuzzerUpperBoundAtMaxJitter(t *testing.T) {
	// A fixed RNG that always returns the maximum jitter value
	// exercises the documented upper bound directly:
	// round(5*exp(-10/60)) = round(4.2324...) = 4, so count=10
	// fuzzes up to at most 14.
	fuzzer := activity.NewFuzzer(100, rng.Fixed(4))
	info := fuzzer.FromCount(10)
	require.Equal(t, uint64(14), info.Count)
}
