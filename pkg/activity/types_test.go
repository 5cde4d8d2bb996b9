package activity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reddit-archive/activity-service/pkg/activity"
)

func TestInfoMarshalJSONIsByteStable(t *testing.T) {
	// Exactly two keys, "count" before "is_fuzzed", no whitespace,
	// since the cache compares/rewrites this payload verbatim.
	info := activity.Info{Count: 125, IsFuzzed: false}
	out, err := info.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"count":125,"is_fuzzed":false}`, string(out))

	info = activity.Info{Count: 3, IsFuzzed: true}
	out, err = info.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"count":3,"is_fuzzed":true}`, string(out))
}

func TestInfoRoundTripsThroughJSON(t *testing.T) {
	want := activity.Info{Count: 42, IsFuzzed: true}
	out, err := want.MarshalJSON()
	require.NoError(t, err)

	var got activity.Info
	require.NoError(t, got.UnmarshalJSON(out))
	require.Equal(t, want, got)
}

func TestInfoUnmarshalJSONRejectsGarbage(t *testing.T) {
	var info activity.Info
	err := info.UnmarshalJSON([]byte(`not json`))
	require.Error(t, err)
}
