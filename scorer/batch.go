package scorer

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/paramio/paramio/linalg"
)

// BatchConfig holds the resource limits of a BatchScorer.
type BatchConfig struct {
	// MaxConcurrent is the maximum number of rows scored in parallel.
	// If 0, defaults to 1.
	MaxConcurrent int64

	// RowsPerSec throttles scoring throughput. If 0, unlimited.
	RowsPerSec float64
}

// BatchScorer scores batches of feature rows under concurrency and
// throughput limits. Scoring itself is pure, so the per-row goroutines share
// the model freely; only the output slot of each row is written.
type BatchScorer struct {
	model   *LinearModel
	sem     *semaphore.Weighted
	limiter *rate.Limiter
}

// NewBatchScorer creates a batch scorer over the given model.
func NewBatchScorer(model *LinearModel, cfg BatchConfig) *BatchScorer {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}

	b := &BatchScorer{
		model: model,
		sem:   semaphore.NewWeighted(cfg.MaxConcurrent),
	}
	if cfg.RowsPerSec > 0 {
		b.limiter = rate.NewLimiter(rate.Limit(cfg.RowsPerSec), int(cfg.RowsPerSec)+1)
	}
	return b
}

// Predict scores every row and returns the probabilities in row order. The
// first row error cancels the remaining work via the group context.
func (b *BatchScorer) Predict(ctx context.Context, rows []linalg.Vector) ([]float64, error) {
	out := make([]float64, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	for i, row := range rows {
		if b.limiter != nil {
			if err := b.limiter.Wait(gctx); err != nil {
				if werr := g.Wait(); werr != nil {
					return nil, werr
				}
				return nil, err
			}
		}
		if err := b.sem.Acquire(gctx, 1); err != nil {
			// The group may already hold a row error; prefer reporting it.
			if werr := g.Wait(); werr != nil {
				return nil, werr
			}
			return nil, err
		}

		i, row := i, row
		g.Go(func() error {
			defer b.sem.Release(1)
			p, err := b.model.Predict(row)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
