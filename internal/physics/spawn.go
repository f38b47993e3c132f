package physics

import (
	"image/color"
	"math/rand"

	"github.com/san-kum/ballsim/internal/vmath"
)

// SpawnParams bounds the randomized batch produced by a Spawner.
// MaxCount is exclusive; MinRadius must be positive.
type SpawnParams struct {
	MinCount   int     `yaml:"min_count"`
	MaxCount   int     `yaml:"max_count"`
	MaxSpeedX  float64 `yaml:"max_speed_x"`
	MaxUpSpeed float64 `yaml:"max_up_speed"`
	MinRadius  float64 `yaml:"min_radius"`
	MaxRadius  float64 `yaml:"max_radius"`
}

func DefaultSpawnParams() SpawnParams {
	return SpawnParams{
		MinCount:   3,
		MaxCount:   8,
		MaxSpeedX:  200,
		MaxUpSpeed: 400,
		MinRadius:  20,
		MaxRadius:  50,
	}
}

// Spawner turns a tap point into a batch of new balls. It is not safe for
// concurrent use because it owns its random source.
type Spawner struct {
	rng    *rand.Rand
	params SpawnParams
}

func NewSpawner(rng *rand.Rand, params SpawnParams) *Spawner {
	return &Spawner{rng: rng, params: params}
}

// Spawn returns between MinCount and MaxCount-1 balls, all centred on at.
func (s *Spawner) Spawn(at vmath.Vec2) []Ball {
	n := s.params.MinCount
	if span := s.params.MaxCount - s.params.MinCount; span > 0 {
		n += s.rng.Intn(span)
	}

	balls := make([]Ball, n)
	for i := range balls {
		balls[i] = Ball{
			Position: at,
			Velocity: vmath.V(
				s.rng.Float64()*2*s.params.MaxSpeedX-s.params.MaxSpeedX,
				-s.rng.Float64()*s.params.MaxUpSpeed,
			),
			Radius: s.params.MinRadius + s.rng.Float64()*(s.params.MaxRadius-s.params.MinRadius),
			Color:  s.randomColor(),
		}
	}
	return balls
}

func (s *Spawner) randomColor() color.RGBA {
	return color.RGBA{
		R: uint8(s.rng.Intn(256)),
		G: uint8(s.rng.Intn(256)),
		B: uint8(s.rng.Intn(256)),
		A: 255,
	}
}
