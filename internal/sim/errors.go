package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDt indicates a non-positive or non-finite timestep.
	ErrInvalidDt = errors.New("sim: timestep must be positive")

	// ErrInvalidTicks indicates a non-positive run length.
	ErrInvalidTicks = errors.New("sim: tick count must be positive")

	// ErrInvalidRuns indicates an ensemble with no members.
	ErrInvalidRuns = errors.New("sim: run count must be positive")

	// ErrInvalidBounds indicates negative world bounds.
	ErrInvalidBounds = errors.New("sim: bounds must not be negative")

	// ErrInvalidSpawn indicates spawn ranges that cannot produce valid balls.
	ErrInvalidSpawn = errors.New("sim: invalid spawn parameters")

	// ErrNonFinite indicates a NaN or Inf appeared in the population.
	ErrNonFinite = errors.New("sim: non-finite ball state")
)

// SimError reports a failure at a specific tick.
type SimError struct {
	Tick    int
	Time    float64
	Message string
	Wrapped error
}

func (e SimError) Error() string {
	return fmt.Sprintf("tick %d (t=%.4f): %s", e.Tick, e.Time, e.Message)
}

func (e SimError) Unwrap() error {
	return e.Wrapped
}
