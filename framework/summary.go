package framework

import (
	"strings"

	"github.com/GhostMeshIO/SillyAxioms/golden"
	"github.com/GhostMeshIO/SillyAxioms/phase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Region labels a coarse area of phase space.
type Region string

const (
	RegionSemanticQuantum   Region = "semantic-quantum"
	RegionAutopoietic       Region = "autopoietic"
	RegionThermodynamic     Region = "thermodynamic"
	RegionParticipatory     Region = "participatory"
	RegionTemporalRecursive Region = "temporal-recursive"
	RegionUnknown           Region = "unknown"
)

// RegionOf classifies c. Rules are checked in order; the first match wins.
func RegionOf(c phase.Coordinate) Region {
	switch {
	case c.Participation() > 0.8 && c.Temporal() < 0.5:
		return RegionSemanticQuantum
	case c.Generative() == 1.0:
		return RegionAutopoietic
	case c.Plasticity() < 0.5 && c.Substrate() < 0.5:
		return RegionThermodynamic
	case c.Participation() == 1.0:
		return RegionParticipatory
	case c.Temporal() > 0.9:
		return RegionTemporalRecursive
	default:
		return RegionUnknown
	}
}

// Summary is a read-only digest of one framework.
type Summary struct {
	Name            string           `json:"name"`
	Key             string           `json:"key"`
	Coordinate      phase.Coordinate `json:"coordinates"`
	Region          Region           `json:"region"`
	CorePattern     string           `json:"core_pattern"`
	MechanismCount  int              `json:"mechanism_count"`
	EquationCount   int              `json:"equation_count"`
	Metrics         Metrics          `json:"metrics"`
	GoldenAlignment float64          `json:"golden_alignment"`
	IsSophiaPoint   bool             `json:"is_sophia_point"`
	Keywords        []string         `json:"seed_keywords"`
	Relativistic    bool             `json:"relativistic"`
}

// DisplayName turns SEMANTIC_GRAVITY into "Semantic Gravity".
// A Caser is stateful, so one is built per call.
func DisplayName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// Summarize digests f. Golden alignment uses the "coherence" metric and falls
// back to the coordinate's own coherence when the metric is missing.
func Summarize(f Framework) Summary {
	f = f.Clone()
	coherence := f.Metric(MetricCoherence, f.Coordinate.Coherence())
	_, relativistic := f.SignatureCurvature()

	return Summary{
		Name:            DisplayName(f.Name),
		Key:             f.Name,
		Coordinate:      f.Coordinate,
		Region:          RegionOf(f.Coordinate),
		CorePattern:     f.CorePattern,
		MechanismCount:  len(f.Mechanisms),
		EquationCount:   len(f.Equations),
		Metrics:         f.Metrics,
		GoldenAlignment: golden.Alignment(coherence),
		IsSophiaPoint:   golden.IsSophiaCoherence(coherence),
		Keywords:        f.Keywords,
		Relativistic:    relativistic,
	}
}
