// Package storeclient wraps the backing-store commands the activity
// counter and result cache need behind a small interface: PING,
// PFADD+EXPIREAT, multi-key PFCOUNT, multi-key GET, and pipelined
// SETEX.
//
// Two of those command groups (record, and the coordinator's batched
// count/refill steps) must each be a single network round trip, so
// the interface exposes a batched-command builder — a small
// abstraction over the store client with a single terminal execute —
// rather than individual blocking calls.
package storeclient

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"google.golang.org/grpc/codes"

	"github.com/reddit-archive/activity-service/pkg/metrics"
	"github.com/reddit-archive/activity-service/pkg/util"
)

// Client is the backing-store contract used by the activity package.
// It is implemented by Redis (the only concrete implementation in
// this repository) and faked by tests.
type Client interface {
	// Ping checks connectivity to the backing store. Used by the
	// service's health check.
	Ping(ctx context.Context) error

	// MGet fetches multiple keys in a single round trip. The
	// returned slice is positionally aligned with keys; a missing
	// key yields a nil entry.
	MGet(ctx context.Context, keys ...string) ([]*string, error)

	// PFCount returns the merged HyperLogLog cardinality of the
	// given keys in a single round trip. A key that does not exist
	// contributes zero to the merge.
	PFCount(ctx context.Context, keys ...string) (int64, error)

	// NewBatch starts a new pipelined, transaction-free batch of
	// commands. Nothing is sent to the store until Execute is
	// called on the returned Batch.
	NewBatch(ctx context.Context) Batch
}

// IntResult is a command result that is only available after the
// Batch it was queued on has been executed.
type IntResult interface {
	Result() (int64, error)
}

// Batch accumulates commands to be issued as a single pipelined round
// trip. Write commands (PFAdd, ExpireAt, SetEx) have no return value;
// read commands (PFCount) return an IntResult whose value is only
// valid after Execute returns successfully.
type Batch interface {
	// PFAdd queues adding member to the HyperLogLog at key.
	PFAdd(key, member string)

	// ExpireAt queues setting key's absolute expiration time.
	ExpireAt(key string, at time.Time)

	// SetEx queues setting key to value with a relative expiration.
	SetEx(key, value string, ttl time.Duration)

	// PFCount queues a merged-cardinality read over keys. The
	// returned IntResult is populated once Execute returns.
	PFCount(keys ...string) IntResult

	// Execute sends every queued command as one pipelined,
	// transaction-free round trip.
	Execute(ctx context.Context) error
}

// redisClient is the Client implementation backed by go-redis.
type redisClient struct {
	rdb     redis.UniversalClient
	metrics *metrics.Metrics
}

// New wraps an existing go-redis client (standalone or cluster) as a
// Client.
func New(rdb redis.UniversalClient) Client {
	return &redisClient{rdb: rdb}
}

// NewWithMetrics is New, except every wrapped backing-store error is
// also counted against m, labeled by command.
func NewWithMetrics(rdb redis.UniversalClient, m *metrics.Metrics) Client {
	return &redisClient{rdb: rdb, metrics: m}
}

func (c *redisClient) incError(command string) {
	if c.metrics == nil {
		return
	}
	c.metrics.StoreErrorsTotal.WithLabelValues(command).Inc()
}

func (c *redisClient) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		c.incError("ping")
		return util.StatusWrapWithCode(err, codes.Unavailable, "backing store ping failed")
	}
	return nil
}

func (c *redisClient) MGet(ctx context.Context, keys ...string) ([]*string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	raw, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		c.incError("mget")
		return nil, util.StatusWrapWithCode(err, codes.Unavailable, "backing store mget failed")
	}
	out := make([]*string, len(raw))
	for i, v := range raw {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		out[i] = &s
	}
	return out, nil
}

func (c *redisClient) PFCount(ctx context.Context, keys ...string) (int64, error) {
	count, err := c.rdb.PFCount(ctx, keys...).Result()
	if err != nil {
		c.incError("pfcount")
		return 0, util.StatusWrapWithCode(err, codes.Unavailable, "backing store pfcount failed")
	}
	return count, nil
}

func (c *redisClient) NewBatch(ctx context.Context) Batch {
	return &redisBatch{ctx: ctx, pipe: c.rdb.Pipeline(), metrics: c.metrics}
}

// redisBatch implements Batch over a go-redis Pipeliner, which is
// transaction-free (unlike TxPipeline).
type redisBatch struct {
	ctx     context.Context
	pipe    redis.Pipeliner
	metrics *metrics.Metrics
}

func (b *redisBatch) PFAdd(key, member string) {
	b.pipe.PFAdd(b.ctx, key, member)
}

func (b *redisBatch) ExpireAt(key string, at time.Time) {
	b.pipe.ExpireAt(b.ctx, key, at)
}

func (b *redisBatch) SetEx(key, value string, ttl time.Duration) {
	b.pipe.SetEx(b.ctx, key, value, ttl)
}

func (b *redisBatch) PFCount(keys ...string) IntResult {
	return b.pipe.PFCount(b.ctx, keys...)
}

func (b *redisBatch) Execute(ctx context.Context) error {
	if _, err := b.pipe.Exec(ctx); err != nil && err != redis.Nil {
		if b.metrics != nil {
			b.metrics.StoreErrorsTotal.WithLabelValues("pipeline").Inc()
		}
		return util.StatusWrapWithCode(err, codes.Unavailable, "backing store pipeline failed")
	}
	return nil
}
