// Package config loads the activity service's jsonnet configuration
// file: an activity.window timespan, an activity.fuzz_threshold
// integer, and a redis.url string.
package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/go-jsonnet"

	"github.com/reddit-archive/activity-service/pkg/activity"
)

// Config is the fully parsed, validated configuration for
// cmd/activity-server.
type Config struct {
	Activity ActivityConfig `json:"activity"`
	Redis    RedisConfig    `json:"redis"`
	HTTP     HTTPConfig     `json:"http"`
}

// ActivityConfig configures the Activity Counter and Fuzzing
// Transform.
type ActivityConfig struct {
	// Window is the sliding window width, e.g. "15m". It must be a
	// positive exact multiple of activity.SliceLength seconds.
	Window string `json:"window"`

	// FuzzThreshold is the count at or above which results are
	// reported exactly.
	FuzzThreshold uint64 `json:"fuzz_threshold"`
}

// RedisConfig configures the go-redis backing-store client.
type RedisConfig struct {
	URL string `json:"url"`
	// MaxConnections bounds the connection pool size. Load sets it to
	// 100 when it is absent or zero.
	MaxConnections int `json:"max_connections"`
}

// HTTPConfig configures the pixel/health gateway's listen address.
type HTTPConfig struct {
	ListenAddress string `json:"listen_address"`
}

// ParsedWindow wraps a parsed Activity.Window duration. Load and
// Validate do not build one; Config.Window parses the string on each
// call.
type ParsedWindow struct {
	time.Duration
}

// Load evaluates the jsonnet file at path, decodes it into a Config,
// and validates it. A malformed jsonnet program, a schema mismatch,
// or a failed validation is a fatal ConfigurationError at process
// start-up.
func Load(path string) (Config, error) {
	vm := jsonnet.MakeVM()
	output, err := vm.EvaluateFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to evaluate %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal([]byte(output), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode evaluated jsonnet: %w", err)
	}
	if cfg.Redis.MaxConnections == 0 {
		cfg.Redis.MaxConnections = 100
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field that the Activity Counter's constructor
// would otherwise reject at first use, so that a bad configuration
// fails at start-up rather than on the first request.
func (c Config) Validate() error {
	window, err := time.ParseDuration(c.Activity.Window)
	if err != nil {
		return fmt.Errorf("config: activity.window %q is not a valid duration: %w", c.Activity.Window, err)
	}
	seconds := int64(window / time.Second)
	if seconds <= 0 || seconds%activity.SliceLength != 0 {
		return fmt.Errorf("config: activity.window %q is not a positive exact multiple of %ds", c.Activity.Window, activity.SliceLength)
	}
	if c.Activity.FuzzThreshold == 0 {
		return fmt.Errorf("config: activity.fuzz_threshold must be positive")
	}
	if c.Redis.URL == "" {
		return fmt.Errorf("config: redis.url is required")
	}
	return nil
}

// Window returns the parsed activity window duration. Validate must
// have already succeeded.
func (c Config) Window() time.Duration {
	d, _ := time.ParseDuration(c.Activity.Window)
	return d
}
