package phase

// Trajectory is an ordered sequence of coordinates.
type Trajectory []Coordinate

// Len returns the number of points.
func (t Trajectory) Len() int { return len(t) }

// First returns the first point and false if t is empty.
func (t Trajectory) First() (Coordinate, bool) {
	if len(t) == 0 {
		return Coordinate{}, false
	}

	return t[0], true
}

// Last returns the final point and false if t is empty.
func (t Trajectory) Last() (Coordinate, bool) {
	if len(t) == 0 {
		return Coordinate{}, false
	}

	return t[len(t)-1], true
}

// Length returns the polyline length Σ |tᵢ₊₁ − tᵢ|.
func (t Trajectory) Length() float64 {
	var total float64
	for i := 1; i < len(t); i++ {
		total += t[i-1].DistanceTo(t[i])
	}

	return total
}

// Linear returns n evenly spaced points from a to b inclusive.
// n < 1 yields nil; n == 1 yields [a].
func Linear(a, b Coordinate, n int) Trajectory {
	if n < 1 {
		return nil
	}
	out := make(Trajectory, n)
	if n == 1 {
		out[0] = a

		return out
	}
	last := float64(n - 1)
	for i := 0; i < n; i++ {
		out[i] = a.Lerp(b, float64(i)/last)
	}
	out[n-1] = b

	return out
}
