package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nothere-one/crawlctl/internal/model"
)

// PostgresProbe verifies that the Postgres backend behind DATABASE_URL is
// reachable and accepts connections.
type PostgresProbe struct {
	// URL is the Postgres connection string (postgres:// scheme or DSN form).
	URL string

	// Timeout bounds the connection attempt and the ping.
	Timeout time.Duration
}

// NewPostgresProbe creates a probe for the given connection URL.
func NewPostgresProbe(url string, timeout time.Duration) *PostgresProbe {
	return &PostgresProbe{URL: url, Timeout: timeout}
}

// Name returns the probe name.
func (p *PostgresProbe) Name() string {
	return "postgres connectivity"
}

// Check opens a minimal pool and pings the server.
func (p *PostgresProbe) Check(ctx context.Context) model.CheckResult {
	start := time.Now()

	poolConfig, err := pgxpool.ParseConfig(p.URL)
	if err != nil {
		return model.CheckResult{
			Name:     p.Name(),
			Status:   model.StatusError,
			Detail:   fmt.Sprintf("invalid DATABASE_URL: %v", err),
			Duration: time.Since(start),
		}
	}
	// One connection is all a ping needs.
	poolConfig.MaxConns = 1
	poolConfig.ConnConfig.ConnectTimeout = p.Timeout

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return model.CheckResult{
			Name:     p.Name(),
			Status:   model.StatusError,
			Detail:   fmt.Sprintf("failed to create connection pool: %v", err),
			Duration: time.Since(start),
		}
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return model.CheckResult{
			Name:     p.Name(),
			Status:   model.StatusError,
			Detail:   fmt.Sprintf("ping %s failed: %v", poolConfig.ConnConfig.Host, err),
			Duration: time.Since(start),
		}
	}

	return model.CheckResult{
		Name:     p.Name(),
		Status:   model.StatusOK,
		Detail:   fmt.Sprintf("ping %s succeeded", poolConfig.ConnConfig.Host),
		Duration: time.Since(start),
	}
}
