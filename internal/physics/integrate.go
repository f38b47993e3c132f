package physics

import (
	"math"

	"github.com/san-kum/ballsim/internal/vmath"
)

// Integrate applies gravity and air drag to the velocity, then moves the
// position by the new velocity (semi-implicit Euler).
func (p Params) Integrate(b Ball) Ball {
	b.Velocity.Y += p.Gravity * p.Dt
	b.Velocity = b.Velocity.Scale(p.AirFriction)
	b.Position = b.Position.Add(b.Velocity.Scale(p.Dt))
	return b
}

// IsAsleep reports whether b rests within PositionSleepThreshold of the floor
// and moves slower than VelocitySleepThreshold. Sleeping bodies skip the
// whole step but still act as collision targets for others.
func (p Params) IsAsleep(b Ball, height float64) bool {
	nearFloor := height-(b.Position.Y+b.Radius) < p.PositionSleepThreshold
	slow := vmath.Magnitude(b.Velocity) < p.VelocitySleepThreshold
	return nearFloor && slow
}

// ResolveBoundary clamps b inside [0, width] x (-inf, height] and reflects
// the offending velocity component. The floor is checked first; the two walls
// are mutually exclusive within one call.
func (p Params) ResolveBoundary(b Ball, width, height float64) Ball {
	if b.Position.Y+b.Radius > height {
		b.Position.Y = height - b.Radius
		b.Velocity.Y = p.bounce(b.Velocity.Y)

		b.Velocity.X *= p.GroundFriction
		if math.Abs(b.Velocity.X) < p.MinimumVelocity {
			b.Velocity.X = 0
		}
	}

	if b.Position.X-b.Radius < 0 {
		b.Position.X = b.Radius
		b.Velocity.X = p.bounce(b.Velocity.X)
	} else if b.Position.X+b.Radius > width {
		b.Position.X = width - b.Radius
		b.Velocity.X = p.bounce(b.Velocity.X)
	}

	return b
}

// bounce zeroes slow components and reverses fast ones with energy loss.
func (p Params) bounce(v float64) float64 {
	if math.Abs(v) < p.MinimumVelocity {
		return 0
	}
	return -v * p.BounceFactor
}
