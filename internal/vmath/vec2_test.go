package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", V(1, 1), V(1, 1), 0},
		{"3-4-5", V(0, 0), V(3, 4), 5},
		{"negative", V(-1, -1), V(2, 3), 5},
		{"huge", V(0, 0), V(1e200, 0), 1e200},
		{"huge diagonal", V(0, 0), V(3e160, 4e160), 5e160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Distance(tt.a, tt.b)
			assert.False(t, math.IsInf(d, 0))
			assert.InEpsilon(t, tt.expected+1, d+1, 1e-12)
			assert.Equal(t, d, Distance(tt.b, tt.a))
		})
	}
}

func TestNormalize(t *testing.T) {
	vectors := []Vec2{
		V(3, 4), V(-3, 4), V(1e-9, 0), V(0, -250), V(1e6, 1e6), V(0.1, -0.2),
		V(1e200, 0), V(3e160, 4e160), V(1e-200, 0), V(0, -1e-310),
	}

	for _, v := range vectors {
		n := Normalize(v)
		assert.InDelta(t, 1.0, Magnitude(n), 1e-9, "normalize(%v)", v)
		assert.NotEqual(t, Vec2{}, n)
	}
}

func TestNormalize_Zero(t *testing.T) {
	n := Normalize(Vec2{})
	assert.Equal(t, Vec2{}, n)
	assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y))
}

func TestDotAndMagnitude(t *testing.T) {
	assert.Equal(t, 11.0, Dot(V(1, 2), V(3, 4)))
	assert.Equal(t, 0.0, Dot(V(1, 0), V(0, 1)))
	assert.Equal(t, 5.0, Magnitude(V(-3, 4)))
	assert.Equal(t, 0.0, Magnitude(Vec2{}))
}

func TestArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(4, 6)

	assert.Equal(t, V(5, 8), a.Add(b))
	assert.Equal(t, V(3, 4), b.Sub(a))
	assert.Equal(t, V(2, 4), a.Scale(2))
	assert.True(t, a.IsFinite())
	assert.False(t, V(math.NaN(), 0).IsFinite())
	assert.False(t, V(0, math.Inf(-1)).IsFinite())
}
