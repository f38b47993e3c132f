package physics

import (
	"testing"

	"github.com/san-kum/ballsim/internal/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_DoesNotMutateInput(t *testing.T) {
	population := []Ball{
		{Position: vmath.V(100, 100), Velocity: vmath.V(50, 0), Radius: 10},
		{Position: vmath.V(115, 100), Velocity: vmath.V(-50, 0), Radius: 10},
	}
	before := Clone(population)

	next := Step(population, 400, 400)

	require.Equal(t, before, population)
	require.Len(t, next, 2)
	assert.NotEqual(t, population[0], next[0])
}

func TestStep_Empty(t *testing.T) {
	assert.Empty(t, Step(nil, 100, 100))
}

func TestStep_ZeroBounds(t *testing.T) {
	population := []Ball{
		{Position: vmath.V(50, 50), Velocity: vmath.V(0, -300), Radius: 10},
	}

	next := Step(population, 0, 0)

	require.True(t, next[0].IsFinite())
	assert.Equal(t, -10.0, next[0].Position.Y)
}

func TestStep_UsesParamsDt(t *testing.T) {
	p := DefaultParams()
	p.Dt = 0.016
	population := []Ball{{Position: vmath.V(100, 0), Radius: 10}}

	next := p.Step(population, 200, 1000)

	assert.InDelta(t, 800*0.016*0.98, next[0].Velocity.Y, 1e-9)
}
