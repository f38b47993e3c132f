// Package vmath provides the 2D vector primitives used by the ball physics.
package vmath

import "math"

// Vec2 is a point or direction in screen space. Y grows downwards.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// IsFinite reports whether neither component is NaN or Inf.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Hypot(dx, dy)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func Normalize(v Vec2) Vec2 {
	mag := Magnitude(v)
	if mag == 0 {
		return v
	}
	return Vec2{v.X / mag, v.Y / mag}
}

func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Magnitude returns the Euclidean norm of v without intermediate overflow
// or underflow.
func Magnitude(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}
