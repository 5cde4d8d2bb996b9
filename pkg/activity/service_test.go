package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/reddit-archive/activity-service/internal/mock"
	"github.com/reddit-archive/activity-service/pkg/activity"
	"github.com/reddit-archive/activity-service/pkg/clock"
	"github.com/reddit-archive/activity-service/pkg/rng"
)

func newTestService(t *testing.T, now int64) (*activity.Service, *mock.MockClient, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)

	sliceClock := activity.NewSliceClock(clock.FromUnix(now))
	counter, err := activity.NewCounter(sliceClock, 15*time.Second)
	require.NoError(t, err)

	cache := activity.NewCache(nil)
	fuzzer := activity.NewFuzzer(1, rng.Fixed(0))
	coordinator := activity.NewCoordinator(cache, counter, fuzzer)

	store := mock.NewMockClient(ctrl)
	service := activity.NewService(store, counter, coordinator, nil)
	return service, store, ctrl
}

func TestServiceRecordActivityDropsInvalidIDsSilently(t *testing.T) {
	service, _, ctrl := newTestService(t, 1200)
	defer ctrl.Finish()

	// No EXPECT is registered on the store, so any command issued
	// would fail the test as unexpected.
	err := service.RecordActivity(context.Background(), "bad id!", "visitor")
	require.NoError(t, err)
}

func TestServiceRecordActivityDelegatesValidIDs(t *testing.T) {
	service, store, ctrl := newTestService(t, 1200)
	defer ctrl.Finish()
	ctx := context.Background()

	batch := mock.NewMockBatch(ctrl)
	store.EXPECT().NewBatch(ctx).Return(batch)
	batch.EXPECT().PFAdd("context/80", "visitor")
	batch.EXPECT().ExpireAt("context/80", time.Unix(82*15, 0))
	batch.EXPECT().Execute(ctx).Return(nil)

	err := service.RecordActivity(ctx, "context", "visitor")
	require.NoError(t, err)
}

func TestServiceIsHealthyPingsStore(t *testing.T) {
	service, store, ctrl := newTestService(t, 1200)
	defer ctrl.Finish()
	ctx := context.Background()

	store.EXPECT().Ping(ctx).Return(nil)
	require.NoError(t, service.IsHealthy(ctx))
}

func TestServiceCountActivityInvalidID(t *testing.T) {
	service, _, ctrl := newTestService(t, 1200)
	defer ctrl.Finish()

	_, err := service.CountActivity(context.Background(), "bad id!")
	require.Error(t, err)
}
