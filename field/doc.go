// Package field implements the conformally-flat metric over the phase space
// and every quantity derived from it.
//
// 🚀 Model
//
//	g_ij(x) = e^{2Ω(x)} δ_ij,   Ω(x) = −k‖x − a‖²
//
//	where a is the attractor (a fixed Coordinate) and k > 0 the curvature
//	scale. Everything here is analytic in Ω:
//
//	  ∇Ω       = −2k(x − a)
//	  Hess Ω   = −2k·I
//	  R_ii     = −(n−2)(H_ii − ∂_iΩ²) − (ΔΩ + (n−2)‖∇Ω‖²),  n = 5
//	  R        = e^{−2Ω} · Σ_i R_ii
//	  Γᵏᵢⱼ     = δᵏᵢ∂ⱼΩ + δᵏⱼ∂ᵢΩ − δᵢⱼ∂ₖΩ
//
// ✨ Guarantees:
//   - pure and deterministic: the same attractor, scale and point give the
//     same Curvature bit for bit
//   - the exponent −2Ω is capped (DefaultExponentCap) and any residual ±Inf
//     saturates to ±MaxFloat64, so no NaN or Inf reaches callers
//   - the attractor is resolved at most once per Model (sync.Once); growing
//     the coordinate source afterwards does not move it
//
// ⚙️ Usage:
//
//	m, err := field.NewModel(field.WithCentroidOf(catalog))
//	if err != nil { /* ErrNoAttractor */ }
//	curv := m.Curvature(phase.New(0.9, 0.8, 0.95, 0.4, 0.85))
//	fmt.Println(curv.RicciScalar)
//
// The *At variants take raw [5]float64 vectors and do not clamp, so the
// descent integrator can difference across the box boundary and the
// geodesic solver can evaluate intermediate ODE states.
//
// SimulateDynamics is a separate, metric-driven toy evolution of a
// framework's signature metrics toward the golden attractor.
package field
