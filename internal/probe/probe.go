package probe

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nothere-one/crawlctl/internal/check"
	"github.com/nothere-one/crawlctl/internal/model"
)

// RunConcurrent executes the probes in parallel and returns their results in
// the order the probes were given, regardless of completion order.
//
// Design decision: Probes against independent backends have no ordering
// dependency, and a slow or unreachable backend should not delay diagnosing
// the other one. We use errgroup for the lifecycle even though probes report
// failures as results rather than errors, so a cancelled context still stops
// everything promptly.
func RunConcurrent(ctx context.Context, probes ...check.Checker) []model.CheckResult {
	results := make([]model.CheckResult, len(probes))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range probes {
		i, p := i, p
		g.Go(func() error {
			results[i] = p.Check(ctx)
			return nil
		})
	}

	// Probes never return errors, only results.
	_ = g.Wait() //nolint:errcheck

	return results
}
