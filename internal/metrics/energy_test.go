package metrics

import (
	"testing"

	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/vmath"
	"github.com/san-kum/ballsim/internal/world"
	"github.com/stretchr/testify/assert"
)

func ballsWorld(balls ...physics.Ball) world.World {
	return world.New(200, 100).Append(balls)
}

func TestEnergy(t *testing.T) {
	m := NewEnergy()

	m.Observe(ballsWorld(physics.Ball{Velocity: vmath.V(3, 4), Radius: 1}))
	m.Observe(ballsWorld(physics.Ball{Velocity: vmath.V(0, 0), Radius: 1}))

	assert.InDelta(t, 6.25, m.Value(), 1e-12)

	m.Reset()
	assert.Equal(t, 0.0, m.Value())
}

func TestPeakEnergy(t *testing.T) {
	m := NewPeakEnergy()

	m.Observe(ballsWorld(physics.Ball{Velocity: vmath.V(0, 2), Radius: 1}))
	m.Observe(ballsWorld(physics.Ball{Velocity: vmath.V(0, 4), Radius: 1}))
	m.Observe(ballsWorld(physics.Ball{Velocity: vmath.V(0, 1), Radius: 1}))

	assert.Equal(t, 8.0, m.Value())
	m.Reset()
	assert.Equal(t, 0.0, m.Value())
}

func TestSleep(t *testing.T) {
	m := NewSleep(physics.DefaultParams())
	assert.Equal(t, 0.0, m.Value())

	m.Observe(ballsWorld(
		physics.Ball{Position: vmath.V(50, 90), Radius: 10},
		physics.Ball{Position: vmath.V(150, 20), Radius: 10},
	))
	m.Observe(world.New(200, 100))

	assert.Equal(t, 0.5, m.Value())
	m.Reset()
	assert.Equal(t, 0.0, m.Value())
}

func TestOverlap(t *testing.T) {
	m := NewOverlap()

	m.Observe(ballsWorld(
		physics.Ball{Position: vmath.V(50, 50), Radius: 10},
		physics.Ball{Position: vmath.V(62, 50), Radius: 10},
	))
	m.Observe(ballsWorld(physics.Ball{Position: vmath.V(50, 50), Radius: 10}))

	assert.InDelta(t, 8.0, m.Value(), 1e-12)
}

func TestStandard(t *testing.T) {
	names := make([]string, 0)
	for _, m := range Standard(physics.DefaultParams()) {
		names = append(names, m.Name())
	}
	assert.ElementsMatch(t, []string{"energy", "peak_energy", "sleep_ratio", "max_overlap"}, names)
}
