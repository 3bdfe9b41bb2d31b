package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nothere-one/crawlctl/internal/model"
)

// RedisProbe verifies that the Redis backend behind a connection URL is
// reachable and answers PING.
type RedisProbe struct {
	// URL is the Redis connection string (redis:// or rediss:// scheme).
	URL string

	// Timeout bounds the connection attempt and the PING round trip.
	Timeout time.Duration
}

// NewRedisProbe creates a probe for the given connection URL.
func NewRedisProbe(url string, timeout time.Duration) *RedisProbe {
	return &RedisProbe{URL: url, Timeout: timeout}
}

// Name returns the probe name.
func (p *RedisProbe) Name() string {
	return "redis connectivity"
}

// Check connects and issues PING.
// A malformed URL and an unreachable server are both StatusError; the detail
// distinguishes them.
func (p *RedisProbe) Check(ctx context.Context) model.CheckResult {
	start := time.Now()

	opts, err := redis.ParseURL(p.URL)
	if err != nil {
		return model.CheckResult{
			Name:     p.Name(),
			Status:   model.StatusError,
			Detail:   fmt.Sprintf("invalid REDIS_URL: %v", err),
			Duration: time.Since(start),
		}
	}
	opts.DialTimeout = p.Timeout

	client := redis.NewClient(opts)
	defer client.Close() //nolint:errcheck // Best effort cleanup

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return model.CheckResult{
			Name:     p.Name(),
			Status:   model.StatusError,
			Detail:   fmt.Sprintf("PING %s failed: %v", opts.Addr, err),
			Duration: time.Since(start),
		}
	}

	return model.CheckResult{
		Name:     p.Name(),
		Status:   model.StatusOK,
		Detail:   fmt.Sprintf("PING %s succeeded", opts.Addr),
		Duration: time.Since(start),
	}
}
