package activity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/reddit-archive/activity-service/pkg/metrics"
	"github.com/reddit-archive/activity-service/pkg/storeclient"
)

// CacheTTL is how long a computed ActivityInfo is memoized for.
const CacheTTL = 30 * time.Second

// Cache is the short-lived per-context result cache, keyed
// "<context_id>/cached".
type Cache struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewCache constructs a Cache. logger may be nil, in which case decode
// failures are silently downgraded to misses without being logged.
// No hit/miss instrument is recorded unless WithMetrics is applied.
func NewCache(logger *zap.Logger) Cache {
	return Cache{logger: logger}
}

// WithMetrics returns a copy of c that records hit/miss counts against m.
func (c Cache) WithMetrics(m *metrics.Metrics) Cache {
	c.metrics = m
	return c
}

// GetMany issues a single multi-get over the cache keys for
// contextIDs and decodes each present value into an Info. A decode
// failure is treated as a miss and, if a logger was supplied, logged
// at Warn rather than surfaced.
func (c Cache) GetMany(ctx context.Context, store storeclient.Client, contextIDs []string) (map[string]Info, error) {
	if len(contextIDs) == 0 {
		return map[string]Info{}, nil
	}

	keys := make([]string, len(contextIDs))
	for i, id := range contextIDs {
		keys[i] = cacheKey(id)
	}

	values, err := store.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}

	hits := make(map[string]Info, len(contextIDs))
	for i, id := range contextIDs {
		if i >= len(values) || values[i] == nil {
			c.incLookup("miss")
			continue
		}
		var info Info
		if err := info.UnmarshalJSON([]byte(*values[i])); err != nil {
			if c.logger != nil {
				c.logger.Warn("discarding malformed cache entry",
					zap.String("context_id", id), zap.Error(err))
			}
			c.incLookup("miss")
			continue
		}
		hits[id] = info
		c.incLookup("hit")
	}
	return hits, nil
}

func (c Cache) incLookup(outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.CacheLookupsTotal.WithLabelValues(outcome).Inc()
}

// SetMany writes each entry at CacheTTL as a single pipelined batch
// of SETEX commands.
func (c Cache) SetMany(ctx context.Context, store storeclient.Client, entries map[string]Info) error {
	if len(entries) == 0 {
		return nil
	}

	batch := store.NewBatch(ctx)
	for id, info := range entries {
		payload, err := info.MarshalJSON()
		if err != nil {
			return err
		}
		batch.SetEx(cacheKey(id), string(payload), CacheTTL)
	}
	return batch.Execute(ctx)
}
