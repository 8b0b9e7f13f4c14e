package phase_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/GhostMeshIO/SillyAxioms/phase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ClampsEveryAxis verifies that out-of-range input is normalized per axis.
func TestNew_ClampsEveryAxis(t *testing.T) {
	c := phase.New(-0.3, 2.0, 1.7, math.NaN(), -1)

	assert.Equal(t, [phase.Dim]float64{0, 1.5, 1, 0, 0}, c.Tuple())
}

// TestFromTuple_Idempotent checks that clamping an already clamped point is a no-op
// and that all components stay inside the documented bounds.
func TestFromTuple_Idempotent(t *testing.T) {
	inputs := [][phase.Dim]float64{
		{0.9, 0.8, 0.95, 0.4, 0.85},
		{-5, 5, -5, 5, -5},
		{1, 1.5, 1, 1, 1},
		{0.5, 1.2, 0.25, 0.75, 0.1},
	}
	for _, in := range inputs {
		c := phase.FromTuple(in)
		again := phase.FromTuple(c.Tuple())
		assert.Equal(t, c, again, "clamping must be idempotent for %v", in)

		for i, v := range c.Tuple() {
			ax := phase.Axis(i)
			assert.GreaterOrEqual(t, v, phase.Lower(ax), "%s below bound", ax)
			assert.LessOrEqual(t, v, phase.Upper(ax), "%s above bound", ax)
		}
	}
}

// TestFromSlice_WrongLength ensures the only failure mode is a dimension mismatch.
func TestFromSlice_WrongLength(t *testing.T) {
	_, err := phase.FromSlice([]float64{1, 2, 3})
	assert.ErrorIs(t, err, phase.ErrDimension)

	c, err := phase.FromSlice([]float64{0.1, 0.2, 0.3, 0.4, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.3, c.Substrate())
}

// TestDistance verifies squared and plain Euclidean distance.
func TestDistance(t *testing.T) {
	a := phase.New(0, 0, 0, 0, 0)
	b := phase.New(1, 1, 1, 1, 0)

	assert.Equal(t, 4.0, a.DistanceSquared(b))
	assert.Equal(t, 2.0, a.DistanceTo(b))
	assert.Equal(t, 0.0, b.DistanceTo(b))
}

// TestAccessors checks the named getters, At and With.
func TestAccessors(t *testing.T) {
	c := phase.New(0.1, 1.2, 0.3, 0.4, 0.5)

	assert.Equal(t, 0.1, c.Participation())
	assert.Equal(t, 1.2, c.Plasticity())
	assert.Equal(t, 0.3, c.Substrate())
	assert.Equal(t, 0.4, c.Temporal())
	assert.Equal(t, 0.5, c.Generative())
	assert.Equal(t, 1.2, c.At(phase.Plasticity))
	assert.Equal(t, 0.0, c.At(phase.Axis(9)))

	moved := c.With(phase.Plasticity, 9)
	assert.Equal(t, 1.5, moved.Plasticity())
	assert.Equal(t, 1.2, c.Plasticity(), "With must not mutate the receiver")
	assert.Equal(t, "plasticity", phase.Plasticity.String())
	assert.Equal(t, "axis(7)", phase.Axis(7).String())
}

// TestCoherence checks the balance metric on balanced and unbalanced points.
func TestCoherence(t *testing.T) {
	assert.Equal(t, 1.0, phase.New(0.5, 0.5, 0.5, 0.5, 0.5).Coherence())

	// tuple (1,0,0,0,0): mean 0.2, variance 0.16 → 1/(1+1.6)
	assert.InDelta(t, 1/2.6, phase.New(1, 0, 0, 0, 0).Coherence(), 1e-12)
}

// TestCentroid checks the mean of several points and the empty case.
func TestCentroid(t *testing.T) {
	_, err := phase.Centroid(nil)
	assert.ErrorIs(t, err, phase.ErrEmpty)

	c, err := phase.Centroid([]phase.Coordinate{
		phase.New(0, 0, 0, 0, 0),
		phase.New(1, 1, 1, 1, 1),
	})
	require.NoError(t, err)
	assert.True(t, c.ApproxEqual(phase.New(0.5, 0.5, 0.5, 0.5, 0.5), 1e-12))
	assert.Equal(t, phase.New(0.5, 0.75, 0.5, 0.5, 0.5), phase.Center())
}

// TestJSON round-trips the array encoding and clamps on decode.
func TestJSON(t *testing.T) {
	raw, err := json.Marshal(phase.New(0.1, 0.2, 0.3, 0.4, 0.5))
	require.NoError(t, err)
	assert.JSONEq(t, `[0.1,0.2,0.3,0.4,0.5]`, string(raw))

	var c phase.Coordinate
	require.NoError(t, json.Unmarshal([]byte(`[2,2,2,2,2]`), &c))
	assert.Equal(t, phase.New(1, 1.5, 1, 1, 1), c)

	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &c))
}

// TestLinear checks endpoints, spacing and degenerate counts.
func TestLinear(t *testing.T) {
	a := phase.New(0, 0, 0, 0, 0)
	b := phase.New(1, 1, 1, 1, 1)

	path := phase.Linear(a, b, 5)
	require.Len(t, path, 5)
	first, _ := path.First()
	last, _ := path.Last()
	assert.Equal(t, a, first)
	assert.Equal(t, b, last)
	assert.InDelta(t, 0.25, path[1].Participation(), 1e-12)
	assert.InDelta(t, math.Sqrt(5), path.Length(), 1e-12)

	assert.Equal(t, phase.Trajectory{a}, phase.Linear(a, b, 1))
	assert.Nil(t, phase.Linear(a, b, 0))

	_, ok := phase.Trajectory(nil).Last()
	assert.False(t, ok)
}
