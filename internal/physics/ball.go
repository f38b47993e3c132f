package physics

import (
	"image/color"
	"math"

	"github.com/san-kum/ballsim/internal/vmath"
)

// Ball is a single simulated body. Mass is uniform, so it never appears.
type Ball struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64
	Color    color.RGBA
}

// IsFinite reports whether position, velocity and radius hold no NaN or Inf.
func (b Ball) IsFinite() bool {
	return b.Position.IsFinite() && b.Velocity.IsFinite() && !math.IsNaN(b.Radius) && !math.IsInf(b.Radius, 0)
}

func Clone(balls []Ball) []Ball {
	c := make([]Ball, len(balls))
	copy(c, balls)
	return c
}
