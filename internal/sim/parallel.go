package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/world"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MetricFactory builds a fresh metric set for one ensemble member.
type MetricFactory func() []Metric

// Ensemble runs the same scenario under consecutive seeds in parallel.
type Ensemble struct {
	spawn     physics.SpawnParams
	metrics   MetricFactory
	numRuns   int
	seedStart int64
	log       *zap.Logger
}

func NewEnsemble(spawn physics.SpawnParams, metrics MetricFactory, numRuns int, seedStart int64, log *zap.Logger) *Ensemble {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ensemble{spawn: spawn, metrics: metrics, numRuns: numRuns, seedStart: seedStart, log: log}
}

// Run returns one result per seed, in seed order. The first failing run
// cancels the others.
func (e *Ensemble) Run(ctx context.Context, w0 world.World, cfg Config) ([]*Result, error) {
	if e.numRuns < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidRuns, e.numRuns)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	results := make([]*Result, e.numRuns)
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			seed := e.seedStart + int64(idx)
			s := New(
				physics.NewSpawner(rand.New(rand.NewSource(seed)), e.spawn),
				e.log.With(zap.Int64("seed", seed)),
			)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			res, err := s.Run(ctx, w0, cfg)
			if err != nil {
				return err
			}
			results[idx] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
