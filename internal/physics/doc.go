// Package physics advances a population of circular bodies under gravity,
// drag and inelastic collisions on a fixed timestep.
//
// The step is built from four per-body stages, applied in order:
//
//   - [Params.Integrate]: gravity, air drag, semi-implicit Euler
//   - [Params.ResolveBoundary]: floor, left wall, right wall
//   - [Params.ResolveCollisions]: brute-force circle/circle impulses
//   - [Params.IsAsleep]: skip all of the above for resting bodies
//
// [Params.Step] runs them over a whole population and returns a new slice;
// the input is never modified. New bodies come from a [Spawner].
//
// # Preconditions
//
// Radius must be positive and position/velocity finite. Neither is checked:
// a bad body produces visibly wrong motion rather than an error.
//
// # Example
//
//	p := physics.DefaultParams()
//	sp := physics.NewSpawner(rand.New(rand.NewSource(1)), physics.DefaultSpawnParams())
//	balls := sp.Spawn(vmath.V(400, 100))
//	for i := 0; i < 60; i++ {
//	    balls = p.Step(balls, 800, 600)
//	}
package physics
