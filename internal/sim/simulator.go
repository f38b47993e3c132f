package sim

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/world"
	"go.uber.org/zap"
)

// Simulator drives a World headlessly on the fixed timestep. It is not safe
// for concurrent use; see Ensemble for parallel runs.
type Simulator struct {
	spawner   *physics.Spawner
	metrics   []Metric
	observers []Observer
	log       *zap.Logger
}

func New(spawner *physics.Spawner, log *zap.Logger) *Simulator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{
		spawner:   spawner,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		log:       log,
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run steps w0 for cfg.Ticks ticks. Cancellation is checked between ticks;
// on cancel the partial result is returned with ctx.Err().
func (s *Simulator) Run(ctx context.Context, w0 world.World, cfg Config) (*Result, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Samples: make([]Sample, 0, cfg.Ticks+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	taps := sortedTaps(cfg.Taps)
	next := 0
	w := w0

	s.log.Info("run started",
		zap.Int("ticks", cfg.Ticks),
		zap.Int("taps", len(taps)),
		zap.Float64("width", w.Bounds.Width),
		zap.Float64("height", w.Bounds.Height),
	)

	result.Samples = append(result.Samples, sampleOf(w, cfg.Params))

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			s.finish(result, w)
			s.log.Info("run canceled", zap.Int("steps", result.StepsTaken))
			return result, ctx.Err()
		default:
		}

		for next < len(taps) && taps[next].Tick <= i {
			w = s.spawn(w, taps[next])
			next++
		}

		for _, m := range s.metrics {
			m.Observe(w)
		}
		for _, obs := range s.observers {
			obs.OnStep(w)
		}

		w = w.Step(cfg.Params)

		if cfg.ValidateState && !w.IsFinite() {
			err := SimError{Tick: w.Tick, Time: w.Time, Message: "non-finite ball state", Wrapped: ErrNonFinite}
			result.Errors = append(result.Errors, err)
			s.log.Warn("run aborted", zap.Error(err))
			break
		}

		result.StepsTaken++
		result.Samples = append(result.Samples, sampleOf(w, cfg.Params))
	}

	s.finish(result, w)

	s.log.Info("run finished",
		zap.Int("steps", result.StepsTaken),
		zap.Int("population", w.Len()),
		zap.String("fingerprint", fmt.Sprintf("%016x", result.Fingerprint)),
	)

	return result, nil
}

func (s *Simulator) finish(result *Result, w world.World) {
	result.Final = w
	result.Fingerprint = w.Fingerprint()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

// RunWithCallback steps w0 until the callback returns false, cfg.Ticks is
// reached, or ctx is done, and returns the world it stopped at. The callback
// sees every world before it is stepped; a world it rejects is returned
// unstepped.
func (s *Simulator) RunWithCallback(ctx context.Context, w0 world.World, cfg Config, callback func(world.World) bool) (world.World, error) {
	if err := ValidateConfig(cfg); err != nil {
		return w0, err
	}

	taps := sortedTaps(cfg.Taps)
	next := 0
	w := w0

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return w, ctx.Err()
		default:
		}

		for next < len(taps) && taps[next].Tick <= i {
			w = s.spawn(w, taps[next])
			next++
		}

		if !callback(w) {
			return w, nil
		}

		w = w.Step(cfg.Params)

		if cfg.ValidateState && !w.IsFinite() {
			return w, SimError{Tick: w.Tick, Time: w.Time, Message: "non-finite ball state", Wrapped: ErrNonFinite}
		}
	}

	return w, nil
}

func (s *Simulator) spawn(w world.World, tap Tap) world.World {
	if s.spawner == nil {
		return w
	}
	batch := s.spawner.Spawn(tap.Point)
	s.log.Debug("spawn",
		zap.Int("tick", tap.Tick),
		zap.Float64("x", tap.Point.X),
		zap.Float64("y", tap.Point.Y),
		zap.Int("count", len(batch)),
	)
	return w.Append(batch)
}

// ValidateConfig rejects configurations the driver cannot run.
func ValidateConfig(cfg Config) error {
	dt := cfg.Params.Dt
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w, got %f", ErrInvalidDt, dt)
	}
	if cfg.Ticks <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidTicks, cfg.Ticks)
	}
	return nil
}

func sortedTaps(taps []Tap) []Tap {
	sorted := make([]Tap, len(taps))
	copy(sorted, taps)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Tick < sorted[j].Tick })
	return sorted
}
