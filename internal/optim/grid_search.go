// Package optim sweeps physics parameters over a grid and ranks the
// combinations by a run metric.
package optim

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/metrics"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
	"go.uber.org/zap"
)

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	log        *zap.Logger
}

// Trial is one evaluated grid point.
type Trial struct {
	Params map[string]float64
	Value  float64
}

func NewGridSearch(params []string, ranges [][]float64, log *zap.Logger) *GridSearch {
	if log == nil {
		log = zap.NewNop()
	}
	return &GridSearch{paramNames: params, ranges: ranges, log: log}
}

// Search runs base once per grid point with the same seed and returns every
// trial plus the one with the smallest value of metricName.
func (g *GridSearch) Search(ctx context.Context, base *config.Config, metricName string) (Trial, []Trial, error) {
	if len(g.paramNames) != len(g.ranges) {
		return Trial{}, nil, fmt.Errorf("optim: %d names for %d ranges", len(g.paramNames), len(g.ranges))
	}

	var trials []Trial
	err := g.searchRecursive(ctx, 0, make(map[string]float64), func(point map[string]float64) error {
		val, err := evaluate(ctx, base, point, metricName, g.log)
		if err != nil {
			return err
		}
		trials = append(trials, Trial{Params: point, Value: val})
		return nil
	})
	if err != nil {
		return Trial{}, trials, err
	}

	best := Trial{Value: math.Inf(1)}
	for _, t := range trials {
		if t.Value < best.Value {
			best = t
		}
	}
	return best, trials, nil
}

func (g *GridSearch) searchRecursive(ctx context.Context, depth int, current map[string]float64, visit func(map[string]float64) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if depth == len(g.paramNames) {
		return visit(current)
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, visit); err != nil {
			return err
		}
	}
	return nil
}

func evaluate(ctx context.Context, base *config.Config, point map[string]float64, metricName string, log *zap.Logger) (float64, error) {
	cfg := *base
	for name, v := range point {
		if err := cfg.Physics.Set(name, v); err != nil {
			return 0, err
		}
	}

	s := sim.New(physics.NewSpawner(rand.New(rand.NewSource(cfg.Seed)), cfg.Spawn), log)
	for _, m := range metrics.Standard(cfg.Physics) {
		s.AddMetric(m)
	}
	res, err := s.Run(ctx, cfg.World(), cfg.SimConfig())
	if err != nil {
		return 0, err
	}
	val, ok := res.Metrics[metricName]
	if !ok {
		return 0, fmt.Errorf("optim: unknown metric %q", metricName)
	}
	log.Debug("trial", zap.Any("params", point), zap.Float64(metricName, val))
	return val, nil
}

// ParseRange reads "lo:hi:n" as n evenly spaced values from lo to hi, or a
// single number as itself.
func ParseRange(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("optim: range %q is not lo:hi:n", s)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, err
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("optim: range %q needs at least 2 points", s)
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return values, nil
}
