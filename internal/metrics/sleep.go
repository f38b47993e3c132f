package metrics

import (
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/world"
)

// Sleep reports the fraction of ball-ticks skipped by the sleep check.
// An empty world contributes nothing.
type Sleep struct {
	name     string
	params   physics.Params
	sleeping int
	total    int
}

func NewSleep(params physics.Params) *Sleep {
	return &Sleep{name: "sleep_ratio", params: params}
}

func (s *Sleep) Name() string { return s.name }

func (s *Sleep) Observe(w world.World) {
	s.sleeping += w.Sleeping(s.params)
	s.total += w.Len()
}

func (s *Sleep) Value() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.sleeping) / float64(s.total)
}

func (s *Sleep) Reset() {
	s.sleeping = 0
	s.total = 0
}
