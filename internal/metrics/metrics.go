package metrics

import (
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
)

// Standard returns the metric set recorded for every saved run.
func Standard(params physics.Params) []sim.Metric {
	return []sim.Metric{
		NewEnergy(),
		NewPeakEnergy(),
		NewSleep(params),
		NewOverlap(),
	}
}
