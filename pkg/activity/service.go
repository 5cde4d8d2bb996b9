package activity

import (
	"context"

	"github.com/reddit-archive/activity-service/pkg/metrics"
	"github.com/reddit-archive/activity-service/pkg/storeclient"
)

// Service exposes the four RPC-surface operations over a
// backing-store Client. It holds no per-request state; it passes its
// store explicitly to the Counter and Coordinator on every call.
type Service struct {
	store       storeclient.Client
	counter     Counter
	coordinator Coordinator
	metrics     *metrics.Metrics
}

// NewService constructs a Service from a store client and the
// Counter/Coordinator built from configuration. m may be nil, in
// which case no instruments are recorded.
func NewService(store storeclient.Client, counter Counter, coordinator Coordinator, m *metrics.Metrics) *Service {
	return &Service{store: store, counter: counter, coordinator: coordinator, metrics: m}
}

// IsHealthy pings the backing store.
func (s *Service) IsHealthy(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// RecordActivity is the best-effort ingest path: an invalid context
// or visitor id is silently dropped rather than surfaced, so that
// malformed pixel requests can never raise errors back to a caller.
func (s *Service) RecordActivity(ctx context.Context, contextID, visitorID string) error {
	if !ValidIdentifier(contextID) || !ValidIdentifier(visitorID) {
		s.incInvalidIdentifiers("record")
		return nil
	}
	err := s.counter.Record(ctx, s.store, contextID, visitorID)
	s.incRecords(err)
	return err
}

// CountActivity returns the current ActivityInfo for a single
// context, failing with InvalidContextID if the id is malformed.
func (s *Service) CountActivity(ctx context.Context, contextID string) (Info, error) {
	info, err := s.coordinator.CountOne(ctx, s.store, contextID)
	s.incCounts(err)
	return info, err
}

// CountActivityMulti returns the current ActivityInfo for each of the
// given contexts, failing the entire call with InvalidContextID if
// any id is malformed.
func (s *Service) CountActivityMulti(ctx context.Context, contextIDs []string) (map[string]Info, error) {
	results, err := s.coordinator.CountMany(ctx, s.store, contextIDs)
	s.incCounts(err)
	return results, err
}

func (s *Service) incRecords(err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordsTotal.WithLabelValues(outcomeLabel(err)).Inc()
}

func (s *Service) incCounts(err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.CountsTotal.WithLabelValues(outcomeLabel(err)).Inc()
}

func (s *Service) incInvalidIdentifiers(path string) {
	if s.metrics == nil {
		return
	}
	s.metrics.InvalidIDsTotal.WithLabelValues(path).Inc()
}

func outcomeLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
