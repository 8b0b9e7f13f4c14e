package field_test

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/GhostMeshIO/SillyAxioms/field"
	"github.com/GhostMeshIO/SillyAxioms/framework"
	"github.com/GhostMeshIO/SillyAxioms/golden"
	"github.com/GhostMeshIO/SillyAxioms/phase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pointA = phase.New(0.9, 0.8, 0.95, 0.4, 0.85)

// closedForm is R = e^{2ku}(80k − 48k²u) with u = ‖x−a‖².
func closedForm(k, u float64) float64 {
	return math.Exp(2*k*u) * (80*k - 48*k*k*u)
}

func mustModel(t *testing.T, opts ...field.Option) *field.Model {
	t.Helper()
	m, err := field.NewModel(opts...)
	require.NoError(t, err)

	return m
}

// countingSource counts Coordinates calls and can grow between them.
type countingSource struct {
	mu    sync.Mutex
	calls atomic.Int32
	cs    []phase.Coordinate
}

func (s *countingSource) Coordinates() []phase.Coordinate {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]phase.Coordinate(nil), s.cs...)
}

func (s *countingSource) add(c phase.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cs = append(s.cs, c)
}

func TestNewModel_RequiresAttractor(t *testing.T) {
	_, err := field.NewModel()
	assert.ErrorIs(t, err, field.ErrNoAttractor)

	_, err = field.NewModel(field.WithScale(2))
	assert.ErrorIs(t, err, field.ErrNoAttractor)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { field.WithScale(0) })
	assert.Panics(t, func() { field.WithScale(-1) })
	assert.Panics(t, func() { field.WithScale(math.NaN()) })
	assert.Panics(t, func() { field.WithScale(math.Inf(1)) })
	assert.Panics(t, func() { field.WithExponentCap(0) })
	assert.Panics(t, func() { field.WithCentroidOf(nil) })
	assert.NotPanics(t, func() { field.WithScale(0.5) })
}

// TestCurvature_AtAttractor checks Ω = 0, ∇Ω = 0 and R = 80k at the attractor.
func TestCurvature_AtAttractor(t *testing.T) {
	a := phase.New(0.74, 0.66, 0.55, 0.61, 0.79)
	for _, k := range []float64{1, 0.5, 3} {
		m := mustModel(t, field.WithAttractor(a), field.WithScale(k))
		c := m.Curvature(a)

		assert.InDelta(t, 80*k, c.RicciScalar, 1e-9)
		assert.Equal(t, 0.0, c.Omega)
		assert.Equal(t, 0.0, c.GradientSquaredOmega)
		assert.InDelta(t, -10*k, c.LaplacianOmega, 1e-12)
		assert.Equal(t, [phase.Dim]float64{}, m.Gradient(a))
	}
}

// TestCurvature_MatchesClosedForm compares the component sum against the reduced formula.
func TestCurvature_MatchesClosedForm(t *testing.T) {
	a := phase.Center()
	m := mustModel(t, field.WithAttractor(a), field.WithScale(1.3))
	for _, c := range []phase.Coordinate{
		pointA,
		phase.New(0, 0, 0, 0, 0),
		phase.New(1, 1.5, 1, 1, 1),
		phase.New(0.2, 0.9, 0.4, 0.6, 0.1),
	} {
		u := c.DistanceSquared(a)
		got := m.Curvature(c)
		assert.InEpsilon(t, closedForm(1.3, u), got.RicciScalar, 1e-12, "%v", c)
		assert.InDelta(t, -1.3*u, got.Omega, 1e-12)
		assert.InDelta(t, 4*1.3*1.3*u, got.GradientSquaredOmega, 1e-12)
	}
}

func TestCurvature_Deterministic(t *testing.T) {
	m := mustModel(t, field.WithCentroidOf(framework.MustDefault()))
	first := m.Curvature(pointA)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.Curvature(pointA))
	}
	assert.False(t, math.IsNaN(first.RicciScalar))
}

// TestCurvature_Saturates forces the product past MaxFloat64.
func TestCurvature_Saturates(t *testing.T) {
	m := mustModel(t,
		field.WithAttractor(phase.Center()),
		field.WithScale(1e6),
		field.WithExponentCap(709),
	)
	c := m.Curvature(phase.New(0, 0, 0, 0, 0))

	assert.Equal(t, -math.MaxFloat64, c.RicciScalar)
	assert.False(t, math.IsInf(c.RicciScalar, 0))

	far := m.RicciScalarAt([phase.Dim]float64{1e200, 0, 0, 0, 0})
	assert.False(t, math.IsNaN(far) || math.IsInf(far, 0))
}

// TestCurvature_ExponentCap checks the default cap keeps the factor finite.
func TestCurvature_ExponentCap(t *testing.T) {
	m := mustModel(t, field.WithAttractor(phase.Center()), field.WithScale(500))
	c := m.Curvature(phase.New(0, 0, 0, 0, 0))

	u := phase.New(0, 0, 0, 0, 0).DistanceSquared(phase.Center())
	sum := 80*500 - 48*500*500*u
	assert.InEpsilon(t, math.Exp(field.DefaultExponentCap)*sum, c.RicciScalar, 1e-12)
}

// TestAttractor_LazyAndCached ensures the centroid is computed once and never moves.
func TestAttractor_LazyAndCached(t *testing.T) {
	src := &countingSource{cs: []phase.Coordinate{
		phase.New(0, 0, 0, 0, 0),
		phase.New(1, 1, 1, 1, 1),
	}}
	m := mustModel(t, field.WithCentroidOf(src))
	assert.Equal(t, int32(0), src.calls.Load(), "construction does not read the source")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Curvature(pointA)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), src.calls.Load())

	want := phase.New(0.5, 0.5, 0.5, 0.5, 0.5)
	assert.True(t, m.Attractor().ApproxEqual(want, 1e-12))

	src.add(phase.New(1, 1.5, 1, 1, 1))
	assert.True(t, m.Attractor().ApproxEqual(want, 1e-12), "growing the source does not move the attractor")
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestAttractor_EmptySourceUsesCenter(t *testing.T) {
	m := mustModel(t, field.WithCentroidOf(&countingSource{}))
	assert.Equal(t, phase.Center(), m.Attractor())
}

func TestAttractor_ExplicitWins(t *testing.T) {
	src := &countingSource{cs: []phase.Coordinate{phase.New(0, 0, 0, 0, 0)}}
	m := mustModel(t, field.WithCentroidOf(src), field.WithAttractor(pointA))

	assert.Equal(t, pointA, m.Attractor())
	assert.Equal(t, int32(0), src.calls.Load())
}

func TestHessianAndRicciTensor(t *testing.T) {
	m := mustModel(t, field.WithAttractor(phase.Center()), field.WithScale(2))

	h := m.Hessian()
	assert.Equal(t, []float64{-4, -4, -4, -4, -4}, h.Diagonal())
	assert.True(t, h.IsSymmetric(0))

	comps := m.RicciComponents(pointA)
	rt := m.RicciTensor(pointA)
	assert.Equal(t, comps[:], rt.Diagonal())

	var sum float64
	for _, r := range comps {
		sum += r
	}
	exp := math.Exp(-2 * m.Omega(pointA))
	assert.InEpsilon(t, m.Curvature(pointA).RicciScalar, exp*sum, 1e-12)

	_, err := golden.IsGoldenMatrix(rt)
	assert.NoError(t, err)
}

// TestAcceleration_MatchesChristoffel contracts Γ explicitly.
func TestAcceleration_MatchesChristoffel(t *testing.T) {
	m := mustModel(t, field.WithAttractor(phase.Center()), field.WithScale(0.7))
	x := [phase.Dim]float64{0.1, 1.2, 0.9, 0.3, 0.6}
	v := [phase.Dim]float64{0.3, -0.2, 0.5, 0.1, -0.4}

	gamma := m.Christoffel(x)
	acc := m.Acceleration(x, v)
	for k := 0; k < phase.Dim; k++ {
		var want float64
		for i := 0; i < phase.Dim; i++ {
			for j := 0; j < phase.Dim; j++ {
				want -= gamma[k][i][j] * v[i] * v[j]
			}
			assert.Equal(t, gamma[k][i][k], gamma[k][k][i], "Γ is symmetric in its lower indices")
		}
		assert.InDelta(t, want, acc[k], 1e-12)
	}
}

func TestAcceleration_ZeroAtRest(t *testing.T) {
	m := mustModel(t, field.WithAttractor(phase.Center()))
	assert.Equal(t, [phase.Dim]float64{}, m.Acceleration(pointA.Tuple(), [phase.Dim]float64{}))
}
