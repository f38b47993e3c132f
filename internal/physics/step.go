package physics

// Step advances every body of population by one tick of p.Dt inside the
// given bounds and returns the new population. population is not modified;
// the result has the same length and order.
//
// Zero bounds are tolerated: every body clamps to y = -radius.
func (p Params) Step(population []Ball, width, height float64) []Ball {
	next := make([]Ball, len(population))
	for i, b := range population {
		if p.IsAsleep(b, height) {
			next[i] = b
			continue
		}

		b = p.Integrate(b)
		b = p.ResolveBoundary(b, width, height)
		next[i] = p.ResolveCollisions(b, i, population)
	}
	return next
}

// Step advances population with DefaultParams.
func Step(population []Ball, width, height float64) []Ball {
	return DefaultParams().Step(population, width, height)
}
