// Package phase defines the bounded 5-dimensional coordinate space in which
// every other SillyAxioms package operates.
//
// 🚀 What is a phase point?
//
//	A Coordinate is an immutable 5-tuple
//
//	  (participation, plasticity, substrate, temporal, generative)
//
//	with per-axis bounds:
//	  • participation ∈ [0, 1]
//	  • plasticity    ∈ [0, 1.5]
//	  • substrate     ∈ [0, 1]
//	  • temporal      ∈ [0, 1]
//	  • generative    ∈ [0, 1]
//
// ✨ Guarantees:
//   - every constructor clamps each axis; out-of-range input is normalized,
//     never rejected (NaN collapses to the lower bound)
//   - clamping is idempotent, so FromTuple(c.Tuple()) == c
//   - values are copied on every operation; a Coordinate is safe to share
//     between goroutines without locks
//
// ⚙️ Usage:
//
//	c := phase.New(0.9, 0.8, 0.95, 0.4, 0.85)
//	d := c.DistanceTo(phase.New(0.5, 0.4, 0.3, 0.6, 0.7))
//
// A Trajectory is an ordered slice of coordinates produced by the descent
// integrator or the geodesic solver; it carries no identity beyond order.
//
// Complexity: every operation is O(Dim) = O(1).
package phase
