package sim

import (
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/vmath"
	"github.com/san-kum/ballsim/internal/world"
)

// Tap is a spawn request applied just before the given tick is stepped.
type Tap struct {
	Tick  int
	Point vmath.Vec2
}

type Metric interface {
	Name() string
	Observe(w world.World)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(w world.World)
}

type Config struct {
	Ticks         int
	Params        physics.Params
	Taps          []Tap
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Ticks:         600,
		Params:        physics.DefaultParams(),
		ValidateState: true,
	}
}

// Sample is the per-tick summary recorded in a Result.
type Sample struct {
	Tick       int     `json:"tick"`
	Time       float64 `json:"time"`
	Population int     `json:"population"`
	Sleeping   int     `json:"sleeping"`
	Energy     float64 `json:"energy"`
}

type Result struct {
	Final       world.World
	Samples     []Sample
	Metrics     map[string]float64
	StepsTaken  int
	Fingerprint uint64
	Errors      []error
}

func sampleOf(w world.World, p physics.Params) Sample {
	return Sample{
		Tick:       w.Tick,
		Time:       w.Time,
		Population: w.Len(),
		Sleeping:   w.Sleeping(p),
		Energy:     w.KineticEnergy(),
	}
}
