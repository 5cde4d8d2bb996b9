package activity

import (
	"math"

	"github.com/reddit-archive/activity-service/pkg/metrics"
	"github.com/reddit-archive/activity-service/pkg/rng"
)

// Fuzzer applies the privacy-preserving fuzzing transform to small
// counts.
type Fuzzer struct {
	fuzzThreshold uint64
	source        rng.Source
	metrics       *metrics.Metrics
}

// NewFuzzer constructs a Fuzzer. fuzzThreshold must be a positive
// integer; counts at or above it are reported exactly.
func NewFuzzer(fuzzThreshold uint64, source rng.Source) Fuzzer {
	return Fuzzer{fuzzThreshold: fuzzThreshold, source: source}
}

// WithMetrics returns a copy of f that counts every fuzzed draw
// against m.
func (f Fuzzer) WithMetrics(m *metrics.Metrics) Fuzzer {
	f.metrics = m
	return f
}

// FromCount builds the ActivityInfo to report for a true count.
//
// Counts at or above the threshold are reported exactly. Smaller
// counts are perturbed upward by a uniform random amount in
// [0, round(5*exp(-count/60))]: the additive jitter depends only on
// the count, not on the threshold, and decays toward zero as the
// count grows.
//
// Rounding mode: round-half-away-from-zero (math.Round).
func (f Fuzzer) FromCount(count uint64) Info {
	if count >= f.fuzzThreshold {
		return Info{Count: count, IsFuzzed: false}
	}

	decay := math.Exp(-float64(count) / 60.0)
	jitter := int(math.Round(5 * decay))
	j := f.source.Intn(jitter + 1)
	if f.metrics != nil {
		f.metrics.FuzzAppliedTotal.Inc()
	}
	return Info{Count: count + uint64(j), IsFuzzed: true}
}
