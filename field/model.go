// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"sync"

	"github.com/GhostMeshIO/SillyAxioms/matrix"
	"github.com/GhostMeshIO/SillyAxioms/phase"
)

// n−2 for the five-dimensional space.
const dimMinusTwo = phase.Dim - 2

// Curvature is the full result of one curvature evaluation.
type Curvature struct {
	RicciScalar          float64 `json:"ricci_scalar"`
	LaplacianOmega       float64 `json:"laplacian_omega"`
	GradientSquaredOmega float64 `json:"gradient_squared_omega"`
	Omega                float64 `json:"omega"`
}

// Model is the conformal field around one attractor. It is safe for
// concurrent use once constructed.
type Model struct {
	k      float64
	expCap float64

	once      sync.Once
	attractor [phase.Dim]float64
	source    CoordinateSource
}

// NewModel builds a Model. Without WithAttractor or WithCentroidOf it
// returns ErrNoAttractor.
func NewModel(opts ...Option) (*Model, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.attractor == nil && o.source == nil {
		return nil, ErrNoAttractor
	}

	m := &Model{k: o.k, expCap: o.expCap, source: o.source}
	if o.attractor != nil {
		m.attractor = o.attractor.Tuple()
		m.once.Do(func() {})
	}

	return m, nil
}

// resolve returns the attractor, computing the source centroid on first use.
func (m *Model) resolve() [phase.Dim]float64 {
	m.once.Do(func() {
		c, err := phase.Centroid(m.source.Coordinates())
		if err != nil {
			c = phase.Center()
		}
		m.attractor = c.Tuple()
		m.source = nil
	})

	return m.attractor
}

// Attractor returns the (possibly lazily resolved) attractor.
func (m *Model) Attractor() phase.Coordinate { return phase.FromTuple(m.resolve()) }

// Scale returns the curvature scale k.
func (m *Model) Scale() float64 { return m.k }

// OmegaAt returns Ω(x) = −k‖x−a‖².
func (m *Model) OmegaAt(x [phase.Dim]float64) float64 {
	a := m.resolve()
	var u float64
	for i := 0; i < phase.Dim; i++ {
		d := x[i] - a[i]
		u += d * d
	}

	return -m.k * u
}

// Omega is OmegaAt for a Coordinate.
func (m *Model) Omega(c phase.Coordinate) float64 { return m.OmegaAt(c.Tuple()) }

// GradientAt returns ∇Ω(x) = −2k(x−a).
func (m *Model) GradientAt(x [phase.Dim]float64) [phase.Dim]float64 {
	a := m.resolve()
	var g [phase.Dim]float64
	for i := 0; i < phase.Dim; i++ {
		g[i] = -2 * m.k * (x[i] - a[i])
	}

	return g
}

// Gradient is GradientAt for a Coordinate.
func (m *Model) Gradient(c phase.Coordinate) [phase.Dim]float64 { return m.GradientAt(c.Tuple()) }

// Hessian returns the constant Hessian of Ω, −2k·I.
func (m *Model) Hessian() *matrix.Dense {
	diag := make([]float64, phase.Dim)
	for i := range diag {
		diag[i] = m.hessianDiag()
	}
	h, _ := matrix.NewDiagonal(diag) // finite, non-empty: cannot fail

	return h
}

func (m *Model) hessianDiag() float64 { return -2 * m.k }

// laplacian is ΔΩ = tr(Hess Ω).
func (m *Model) laplacian() float64 { return phase.Dim * m.hessianDiag() }

// components returns R_ii at x together with ‖∇Ω‖².
func (m *Model) components(x [phase.Dim]float64) ([phase.Dim]float64, float64) {
	var (
		g   = m.GradientAt(x)
		gg  float64
		out [phase.Dim]float64
		h   = m.hessianDiag()
	)
	for i := 0; i < phase.Dim; i++ {
		gg += g[i] * g[i]
	}
	trace := m.laplacian() + dimMinusTwo*gg
	for i := 0; i < phase.Dim; i++ {
		out[i] = -dimMinusTwo*(h-g[i]*g[i]) - trace
	}

	return out, gg
}

// CurvatureAt evaluates every curvature quantity at the raw position x.
func (m *Model) CurvatureAt(x [phase.Dim]float64) Curvature {
	// Stage 1: R_ii and the conformal factor
	comps, gg := m.components(x)
	omega := m.OmegaAt(x)
	var sum float64
	for _, r := range comps {
		sum += r
	}

	// Stage 2: capped exponent, saturated product
	e2 := math.Max(-m.expCap, math.Min(m.expCap, -2*omega))

	return Curvature{
		RicciScalar:          saturate(math.Exp(e2) * sum),
		LaplacianOmega:       m.laplacian(),
		GradientSquaredOmega: saturate(gg),
		Omega:                saturate(omega),
	}
}

// Curvature evaluates every curvature quantity at c.
func (m *Model) Curvature(c phase.Coordinate) Curvature { return m.CurvatureAt(c.Tuple()) }

// RicciScalarAt returns only the scalar curvature at x.
func (m *Model) RicciScalarAt(x [phase.Dim]float64) float64 { return m.CurvatureAt(x).RicciScalar }

// RicciComponents returns the five diagonal Ricci components R_ii at c.
func (m *Model) RicciComponents(c phase.Coordinate) [phase.Dim]float64 {
	comps, _ := m.components(c.Tuple())

	return comps
}

// RicciTensor returns diag(R_00 … R_44) at c.
func (m *Model) RicciTensor(c phase.Coordinate) *matrix.Dense {
	comps := m.RicciComponents(c)
	diag := make([]float64, phase.Dim)
	for i, r := range comps {
		diag[i] = saturate(r)
	}
	t, _ := matrix.NewDiagonal(diag)

	return t
}

// Christoffel returns Γᵏᵢⱼ at x indexed as [k][i][j].
func (m *Model) Christoffel(x [phase.Dim]float64) [phase.Dim][phase.Dim][phase.Dim]float64 {
	g := m.GradientAt(x)
	var gamma [phase.Dim][phase.Dim][phase.Dim]float64
	for k := 0; k < phase.Dim; k++ {
		for i := 0; i < phase.Dim; i++ {
			for j := 0; j < phase.Dim; j++ {
				var v float64
				if k == i {
					v += g[j]
				}
				if k == j {
					v += g[i]
				}
				if i == j {
					v -= g[k]
				}
				gamma[k][i][j] = v
			}
		}
	}

	return gamma
}

// Acceleration returns the geodesic acceleration −Γᵏᵢⱼ vⁱ vʲ at (x, v).
// The contraction is closed-form: −(2v_k(∇Ω·v) − ∂_kΩ‖v‖²).
func (m *Model) Acceleration(x, v [phase.Dim]float64) [phase.Dim]float64 {
	g := m.GradientAt(x)
	var gv, vv float64
	for i := 0; i < phase.Dim; i++ {
		gv += g[i] * v[i]
		vv += v[i] * v[i]
	}
	var acc [phase.Dim]float64
	for k := 0; k < phase.Dim; k++ {
		acc[k] = -(2*v[k]*gv - g[k]*vv)
	}

	return acc
}

// saturate maps ±Inf to ±MaxFloat64 and NaN to 0.
func saturate(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case math.IsInf(x, 1):
		return math.MaxFloat64
	case math.IsInf(x, -1):
		return -math.MaxFloat64
	}

	return x
}
