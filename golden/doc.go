// Package golden flags "sophia points": places where curvature, a set of
// curvature components, or the spectrum of a symmetric tensor sits close to
// the golden ratio φ = (1+√5)/2.
//
// Every function is pure and stateless; the package only labels values that
// the field model and the integrators already produced.
//
// ⚙️ Usage:
//
//	golden.IsGolden(1.618034)                 // true
//	golden.IsGolden(0.2, 1.0, 1.618)          // true: 1.618/1.0 ≈ φ
//	ok, err := golden.IsGoldenMatrix(tensor)  // eigenvalue ratios
//
// Tolerances:
//   - Tolerance (0.05) for scalar and ratio proximity to φ or 1/φ
//   - SophiaTolerance (0.015) for coherence proximity to 1/φ
package golden
