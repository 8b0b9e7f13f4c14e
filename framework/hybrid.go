package framework

import (
	"math/rand/v2"
	"strings"

	"github.com/GhostMeshIO/SillyAxioms/phase"
)

// hybridJitter bounds the per-axis perturbation applied to a blended coordinate.
const hybridJitter = 0.05

var hybridMechanisms = []string{
	"Golden ratio optimization",
	"Ricci flow coherence maximization",
	"Paradox entropy pump",
	"Recursive validation",
	"Phase boundary navigation",
	"Cosmological constant tuning",
}

// HybridName builds "SEMANTIC-AUTOPOIETIC_HYBRID" from the first word of each parent.
func HybridName(a, b string) string {
	return firstWord(a) + "-" + firstWord(b) + "_HYBRID"
}

func firstWord(name string) string {
	if i := strings.IndexByte(name, '_'); i > 0 {
		return name[:i]
	}

	return name
}

// Blend creates a hybrid of a and b.
//
// The coordinate is the elegance-weighted mean of the parents plus a uniform
// perturbation in ±0.05 per axis, clamped. The signature curvature is the mean
// of the parents' (0.5 when missing) and the coherence metric is calibrated
// near 1/φ. rng drives every random choice; nil yields the unperturbed,
// first-choice hybrid, which is fully deterministic.
func Blend(a, b Framework, rng *rand.Rand) Framework {
	// Stage 1: elegance weights
	ea, eb := a.Metric(MetricElegance, 1), b.Metric(MetricElegance, 1)
	wa := 0.5
	if ea+eb > 0 {
		wa = ea / (ea + eb)
	}
	wb := 1 - wa

	// Stage 2: blended coordinate
	ta, tb := a.Coordinate.Tuple(), b.Coordinate.Tuple()
	var mixed [phase.Dim]float64
	for i := 0; i < phase.Dim; i++ {
		mixed[i] = ta[i]*wa + tb[i]*wb + uniform(rng, -hybridJitter, hybridJitter)
	}

	// Stage 3: mechanisms and equations
	var mechanisms []string
	for _, pool := range [][]string{a.Mechanisms, b.Mechanisms, hybridMechanisms} {
		if m, ok := pick(rng, pool); ok {
			mechanisms = append(mechanisms, m)
		}
	}
	mechanisms = append(mechanisms,
		strings.ToLower(firstWord(a.Name))+"-"+strings.ToLower(firstWord(b.Name))+" coupling")

	var equations []string
	for _, pool := range [][]string{a.Equations, b.Equations} {
		if e, ok := pick(rng, pool); ok {
			equations = append(equations, e)
		}
	}

	// Stage 4: metrics
	metrics := Metrics{
		MetricNovelty:   1.25 + uniform(rng, -0.05, 0.05),
		MetricAlienness: 8.5 + uniform(rng, -0.5, 0.5),
		MetricElegance:  95.0 + uniform(rng, -2, 2),
		MetricDensity:   12.0 + uniform(rng, -1, 1),
		MetricCoherence: 0.618 + uniform(rng, -0.01, 0.01),
		MetricRicciScalar: (a.Metric(MetricRicciScalar, 0.5) +
			b.Metric(MetricRicciScalar, 0.5)) / 2,
	}
	metrics[MetricCosmologicalConstant], _ = pick(rng, []float64{0.618, 1.0, 1.618, 2.0})
	metrics[MetricPlanckScale], _ = pick(rng, []float64{0.5, 0.618, 1.0, 1.5})

	return Framework{
		Name:        HybridName(a.Name, b.Name),
		Coordinate:  phase.FromTuple(mixed),
		CorePattern: a.CorePattern + " entangled with " + b.CorePattern,
		Mechanisms:  mechanisms,
		Equations:   equations,
		Metrics:     metrics,
		Keywords:    union(a.Keywords, b.Keywords),
		Parents:     []string{a.Name, b.Name},
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if rng == nil {
		return 0
	}

	return lo + rng.Float64()*(hi-lo)
}

func pick[T any](rng *rand.Rand, pool []T) (T, bool) {
	var zero T
	if len(pool) == 0 {
		return zero, false
	}
	if rng == nil {
		return pool[0], true
	}

	return pool[rng.IntN(len(pool))], true
}

func union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, k := range list {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}

	return out
}
