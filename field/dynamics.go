package field

import (
	"math"
	"math/rand/v2"

	"github.com/GhostMeshIO/SillyAxioms/framework"
	"github.com/GhostMeshIO/SillyAxioms/golden"
)

// DefaultDynamicsSteps is the step count used when SimulateDynamics gets steps ≤ 0.
const DefaultDynamicsSteps = 50

// Attractor kinds reported by SimulateDynamics.
const (
	AttractorGolden = "golden_ratio"
	AttractorOther  = "other"
)

// stabilisation window around 1/φ for the final coherence.
const stabilisedWithin = 0.05

// FieldState is one snapshot of the metric-driven field.
type FieldState struct {
	RicciScalar          float64 `json:"ricci_scalar"`
	CosmologicalConstant float64 `json:"cosmological_constant"`
	Coherence            float64 `json:"coherence"`
	EnergyDensity        float64 `json:"energy_density"`
}

// Dynamics is the outcome of SimulateDynamics.
type Dynamics struct {
	Framework     string            `json:"framework"`
	Initial       framework.Metrics `json:"initial_conditions"`
	Final         FieldState        `json:"final_state"`
	History       []FieldState      `json:"history"`
	Stabilized    bool              `json:"stabilized"`
	AttractorType string            `json:"attractor_type"`
}

// SimulateDynamics evolves f's signature metrics for steps iterations.
//
// Each step applies
//
//	dR = −0.1R + 0.05C
//	dΛ = 0.02(0.618 − Λ)
//	dC = 0.12(0.75 − C)·e^{−|ρ − 1.05|}
//	ρ += U(−0.01, 0.01)
//
// and clamps R ∈ [−1,1], Λ ∈ [0.1,3], C ∈ [0,1], ρ ∈ [0.5,2]. rng drives the
// energy-density noise; nil disables it.
func SimulateDynamics(f framework.Framework, steps int, rng *rand.Rand) Dynamics {
	if steps <= 0 {
		steps = DefaultDynamicsSteps
	}
	s := FieldState{
		RicciScalar:          f.Metric(framework.MetricRicciScalar, 0.5),
		CosmologicalConstant: f.Metric(framework.MetricCosmologicalConstant, 1.0),
		Coherence:            f.Metric(framework.MetricCoherence, 0.5),
		EnergyDensity:        f.Metric(framework.MetricDensity, 10.0) / 10.0,
	}

	history := make([]FieldState, 0, steps)
	for i := 0; i < steps; i++ {
		dR := -0.1*s.RicciScalar + 0.05*s.Coherence
		dL := 0.02 * (0.618 - s.CosmologicalConstant)
		dC := 0.12 * (0.75 - s.Coherence) * math.Exp(-math.Abs(s.EnergyDensity-1.05))

		s.RicciScalar = clamp(s.RicciScalar+dR, -1, 1)
		s.CosmologicalConstant = clamp(s.CosmologicalConstant+dL, 0.1, 3)
		s.Coherence = clamp(s.Coherence+dC, 0, 1)
		noise := 0.0
		if rng != nil {
			noise = -0.01 + 0.02*rng.Float64()
		}
		s.EnergyDensity = clamp(s.EnergyDensity+noise, 0.5, 2)

		history = append(history, s)
	}

	stable := math.Abs(s.Coherence-golden.InversePhi) < stabilisedWithin
	kind := AttractorOther
	if stable {
		kind = AttractorGolden
	}
	initial := framework.Metrics{}
	for k, v := range f.Metrics {
		initial[k] = v
	}

	return Dynamics{
		Framework:     f.Name,
		Initial:       initial,
		Final:         s,
		History:       history,
		Stabilized:    stable,
		AttractorType: kind,
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
