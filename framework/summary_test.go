package framework_test

import (
	"math/rand/v2"
	"testing"

	"github.com/GhostMeshIO/SillyAxioms/framework"
	"github.com/GhostMeshIO/SillyAxioms/phase"
	"github.com/stretchr/testify/assert"
)

func TestRegionOf_Defaults(t *testing.T) {
	c := framework.MustDefault()
	want := map[string]framework.Region{
		"SEMANTIC_GRAVITY":          framework.RegionSemanticQuantum,
		"AUTOPOIETIC_COMPUTATIONAL": framework.RegionAutopoietic,
		"THERMODYNAMIC_EPISTEMIC":   framework.RegionThermodynamic,
		"FRACTAL_PARTICIPATORY":     framework.RegionParticipatory,
		"CAUSAL_RECURSION_FIELD":    framework.RegionTemporalRecursive,
	}
	for name, region := range want {
		assert.Equal(t, region, framework.RegionOf(c.Get(name).Coordinate), name)
	}
	assert.Equal(t, framework.RegionUnknown, framework.RegionOf(phase.New(0.5, 0.5, 0.5, 0.5, 0.5)))
}

func TestSummarize(t *testing.T) {
	c := framework.MustDefault()

	s := framework.Summarize(c.Get("SEMANTIC_GRAVITY"))
	assert.Equal(t, "Semantic Gravity", s.Name)
	assert.Equal(t, "SEMANTIC_GRAVITY", s.Key)
	assert.Equal(t, 8, s.MechanismCount)
	assert.Equal(t, 4, s.EquationCount)
	assert.True(t, s.IsSophiaPoint, "coherence 0.618 is a sophia point")
	assert.Less(t, s.GoldenAlignment, 0.001)
	assert.True(t, s.Relativistic)

	s = framework.Summarize(c.Get("AUTOPOIETIC_COMPUTATIONAL"))
	assert.False(t, s.IsSophiaPoint)

	bare := framework.Summarize(framework.Framework{Name: "BARE", Coordinate: phase.New(0.5, 0.5, 0.5, 0.5, 0.5)})
	assert.False(t, bare.Relativistic)
	assert.InDelta(t, 1-0.6180339887, bare.GoldenAlignment, 1e-9, "falls back to coordinate coherence (1.0)")
}

// TestBlend_Deterministic checks the nil-rng hybrid exactly.
func TestBlend_Deterministic(t *testing.T) {
	a := framework.Framework{
		Name:       "SEMANTIC_GRAVITY",
		Coordinate: phase.New(1, 1, 1, 1, 1),
		Mechanisms: []string{"m-a"},
		Equations:  []string{"e-a"},
		Metrics:    framework.Metrics{framework.MetricElegance: 75, framework.MetricRicciScalar: 0.2},
		Keywords:   []string{"meaning", "shared"},
	}
	b := framework.Framework{
		Name:       "CAUSAL_RECURSION_FIELD",
		Coordinate: phase.New(0, 0, 0, 0, 0),
		Mechanisms: []string{"m-b"},
		Metrics:    framework.Metrics{framework.MetricElegance: 25},
		Keywords:   []string{"time", "shared"},
	}

	h := framework.Blend(a, b, nil)
	assert.Equal(t, "SEMANTIC-CAUSAL_HYBRID", h.Name)
	assert.True(t, h.Coordinate.ApproxEqual(phase.New(0.75, 0.75, 0.75, 0.75, 0.75), 1e-12))
	assert.Equal(t, []string{"m-a", "m-b", "Golden ratio optimization", "semantic-causal coupling"}, h.Mechanisms)
	assert.Equal(t, []string{"e-a"}, h.Equations)
	assert.Equal(t, []string{"SEMANTIC_GRAVITY", "CAUSAL_RECURSION_FIELD"}, h.Parents)
	assert.Equal(t, []string{"meaning", "shared", "time"}, h.Keywords)
	r, _ := h.SignatureCurvature()
	assert.InDelta(t, 0.35, r, 1e-12, "mean of 0.2 and the 0.5 default")
	assert.Equal(t, 0.618, h.Metrics[framework.MetricCoherence])
}

// TestBlend_Seeded checks bounds and reproducibility with a seeded source.
func TestBlend_Seeded(t *testing.T) {
	c := framework.MustDefault()
	a, b := c.Get("SEMANTIC_GRAVITY"), c.Get("THERMODYNAMIC_EPISTEMIC")

	h1 := framework.Blend(a, b, rand.New(rand.NewPCG(7, 11)))
	h2 := framework.Blend(a, b, rand.New(rand.NewPCG(7, 11)))
	assert.Equal(t, h1, h2, "same seed, same hybrid")

	mean := framework.Blend(a, b, nil).Coordinate
	assert.True(t, h1.Coordinate.ApproxEqual(mean, 0.05+1e-12), "jitter stays within ±0.05")
	assert.InDelta(t, 0.618, h1.Metrics[framework.MetricCoherence], 0.01)
	assert.Len(t, h1.Mechanisms, 4)
}
