package activity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reddit-archive/activity-service/pkg/activity"
)

func TestValidIdentifier(t *testing.T) {
	cases := []struct {
		name string
		id   string
		want bool
	}{
		{"alnum", "context_123", true},
		{"maxLength50", strings.Repeat("a", 50), true},
		{"tooLong51", strings.Repeat("a", 51), false},
		{"space", "bad id", false},
		{"dot", "bad.id", false},
		{"nonASCII", "snow☃man", false},
		{"hyphen", "bad-id", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, activity.ValidIdentifier(c.id))
		})
	}
}
