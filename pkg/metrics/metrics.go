// Package metrics registers the Prometheus instruments the activity
// service exposes over /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds every instrument the activity and storeclient packages
// record against. A zero-value Metrics is unsafe to use; build one
// with New, which also registers it with a prometheus.Registerer.
type Metrics struct {
	RecordsTotal      *prometheus.CounterVec
	CountsTotal       *prometheus.CounterVec
	CacheLookupsTotal *prometheus.CounterVec
	FuzzAppliedTotal  prometheus.Counter
	InvalidIDsTotal   *prometheus.CounterVec
	StoreErrorsTotal  *prometheus.CounterVec
}

// New constructs the Metrics instruments and registers them against
// stats. Call this once at process start-up.
func New(stats prometheus.Registerer) *Metrics {
	m := &Metrics{
		RecordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activity_records_total",
			Help: "Count of record_activity calls labeled by outcome.",
		}, []string{"result"}),
		CountsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activity_counts_total",
			Help: "Count of count_activity/count_activity_multi calls labeled by outcome.",
		}, []string{"result"}),
		CacheLookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activity_cache_lookups_total",
			Help: "Count of Result Cache lookups labeled hit or miss.",
		}, []string{"outcome"}),
		FuzzAppliedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "activity_fuzz_applied_total",
			Help: "Count of counts that fell below fuzz_threshold and were perturbed.",
		}),
		InvalidIDsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activity_invalid_identifiers_total",
			Help: "Count of context/visitor ids rejected by the identifier grammar, labeled by path.",
		}, []string{"path"}),
		StoreErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activity_store_errors_total",
			Help: "Count of backing-store command failures labeled by command.",
		}, []string{"command"}),
	}

	stats.MustRegister(
		m.RecordsTotal,
		m.CountsTotal,
		m.CacheLookupsTotal,
		m.FuzzAppliedTotal,
		m.InvalidIDsTotal,
		m.StoreErrorsTotal,
	)
	return m
}
