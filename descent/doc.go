// Package descent walks a phase point toward lower |R| (or toward a
// requested curvature) with momentum gradient descent.
//
// What it does
//
//	Each step evaluates R₀ = R(x), differences R centrally along every axis,
//	scales the base step by min(1, ‖∇R‖_prev / ‖∇R‖), and updates
//
//	  v ← μ·v − dt_adapt · sign(R₀ − target) · ∇R
//	  x ← x + v
//
//	Components that leave the box are mirrored back inside and their
//	velocity is inverted and halved; anything still outside is clamped.
//
// Stopping
//   - displacement below Options.Tolerance (converged)
//   - |R₀ − target| < TargetWindow when Options.Target is set
//   - Options.Steps exhausted (not an error)
//
// The returned Trajectory always starts with the given start point and has
// at most Steps+1 entries, all inside the box.
//
// Complexity: O(Steps · 2·Dim) curvature evaluations.
package descent
