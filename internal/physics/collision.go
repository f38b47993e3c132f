package physics

import "github.com/san-kum/ballsim/internal/vmath"

// ResolveCollisions resolves b, the in-progress state of population[self],
// against every other body of population in order. Only b changes: others
// are read at their pre-tick state and receive no impulse or correction.
// Each correction compounds on the previous one.
func (p Params) ResolveCollisions(b Ball, self int, population []Ball) Ball {
	for j := range population {
		if j == self {
			continue
		}
		b = p.resolvePair(b, population[j])
	}
	return b
}

func (p Params) resolvePair(b, other Ball) Ball {
	reach := b.Radius + other.Radius
	distance := vmath.Distance(b.Position, other.Position)
	if distance >= reach {
		return b
	}

	normal := vmath.Normalize(b.Position.Sub(other.Position))
	relative := b.Velocity.Sub(other.Velocity)
	alongNormal := vmath.Dot(relative, normal)

	// approaching
	if alongNormal < 0 {
		j := -(1 + p.Restitution) * alongNormal
		b.Velocity = b.Velocity.Add(normal.Scale(j))
	}

	if overlap := reach - distance; overlap > 0 {
		b.Position = b.Position.Add(normal.Scale(overlap * 0.5))
	}

	return b
}
