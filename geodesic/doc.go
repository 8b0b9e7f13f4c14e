// Package geodesic integrates the geodesic equation of the conformal field
// between two phase points.
//
// 🚀 Model
//
//	y = (x, v) ∈ ℝ¹⁰,  x' = v,  v'ₖ = −Σ Γᵏᵢⱼ vⁱ vʲ
//
//	The acceleration comes from an Accelerator (normally *field.Model). The
//	initial velocity is the unit vector from start toward end.
//
// ✨ Behaviour:
//   - adaptive Dormand–Prince 5(4) stepping with RelTol/AbsTol control
//   - the event ‖x − end‖ ≤ EventTolerance ends the run; the crossing is
//     located by bisection inside the accepted step
//   - a second pass re-integrates [0, t_event] and samples Points evenly
//     spaced parameters
//   - step ceiling, step underflow, non-finite state or no event within
//     MaxParameter: log once and return the straight line with Points samples
//   - start ≈ end (distance < 1e-12): return [start]
//
// Solve never fails for valid Options; Result.Method tells the caller which
// branch produced the path.
//
// ⚙️ Usage:
//
//	res, _ := geodesic.Solve(model, a, b, nil)
//	if res.Method == geodesic.LinearFallback { … }
//
//	path := geodesic.Path(model, a, b, 50)
package geodesic
