package extract

import (
	"context"
	"fmt"

	"go.trai.ch/specred/internal/core/ports"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// RunBoxcar extracts independent detector images concurrently, at most parallelism at a time.
// The background images are returned in job order; the first error cancels the remaining jobs.
func RunBoxcar(ctx context.Context, log ports.Logger, jobs []BoxcarInput, parallelism int) ([]*mat.Dense, error) {
	out := make([]*mat.Dense, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bg, err := Boxcar(log, jobs[i])
			if err != nil {
				return err
			}
			out[i] = bg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info(fmt.Sprintf("extracted %d detector image(s)", len(jobs)))
	return out, nil
}
