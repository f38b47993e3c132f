// Package world holds the simulation state owned by a loop driver: the
// population, the current bounds and the simulated clock.
//
// A World is a value. Step and Append return a new World and never touch
// the receiver's population, so a snapshot handed to a renderer stays valid
// while the driver moves on.
package world

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/vmath"
)

type Bounds struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

type World struct {
	Balls  []physics.Ball
	Bounds Bounds
	Tick   int
	Time   float64
}

func New(width, height float64) World {
	return World{Bounds: Bounds{Width: width, Height: height}}
}

// Step advances the world by one tick of p.Dt.
func (w World) Step(p physics.Params) World {
	return World{
		Balls:  p.Step(w.Balls, w.Bounds.Width, w.Bounds.Height),
		Bounds: w.Bounds,
		Tick:   w.Tick + 1,
		Time:   w.Time + p.Dt,
	}
}

// Append returns a world with batch added after the existing balls.
func (w World) Append(batch []physics.Ball) World {
	balls := make([]physics.Ball, 0, len(w.Balls)+len(batch))
	balls = append(balls, w.Balls...)
	balls = append(balls, batch...)
	w.Balls = balls
	return w
}

// WithBounds returns w resized. Balls outside the new bounds are corrected
// by the next Step like any other penetration.
func (w World) WithBounds(width, height float64) World {
	w.Bounds = Bounds{Width: width, Height: height}
	return w
}

// Reset drops every ball and rewinds the clock, keeping the bounds.
func (w World) Reset() World {
	return New(w.Bounds.Width, w.Bounds.Height)
}

func (w World) Len() int { return len(w.Balls) }

func (w World) Center() vmath.Vec2 {
	return vmath.V(w.Bounds.Width/2, w.Bounds.Height/2)
}

func (w World) IsFinite() bool {
	for _, b := range w.Balls {
		if !b.IsFinite() {
			return false
		}
	}
	return true
}

// Sleeping counts the balls that the next Step will skip.
func (w World) Sleeping(p physics.Params) int {
	n := 0
	for _, b := range w.Balls {
		if p.IsAsleep(b, w.Bounds.Height) {
			n++
		}
	}
	return n
}

// AtRest reports whether the world holds balls and every one is asleep.
func (w World) AtRest(p physics.Params) bool {
	return w.Len() > 0 && w.Sleeping(p) == w.Len()
}

// KineticEnergy sums 0.5*|v|^2 over all balls (unit mass).
func (w World) KineticEnergy() float64 {
	e := 0.0
	for _, b := range w.Balls {
		e += 0.5 * vmath.Dot(b.Velocity, b.Velocity)
	}
	return e
}

// MaxOverlap returns the deepest pairwise penetration in the population.
func (w World) MaxOverlap() float64 {
	deepest := 0.0
	for i := range w.Balls {
		for j := i + 1; j < len(w.Balls); j++ {
			a, b := w.Balls[i], w.Balls[j]
			d := a.Radius + b.Radius - vmath.Distance(a.Position, b.Position)
			if d > deepest {
				deepest = d
			}
		}
	}
	return deepest
}

// Fingerprint hashes the exact bit patterns of every ball, so two runs with
// the same seed and inputs produce the same value.
func (w World) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	for _, b := range w.Balls {
		put(b.Position.X)
		put(b.Position.Y)
		put(b.Velocity.X)
		put(b.Velocity.Y)
		put(b.Radius)
		_, _ = d.Write([]byte{b.Color.R, b.Color.G, b.Color.B, b.Color.A})
	}
	return d.Sum64()
}
