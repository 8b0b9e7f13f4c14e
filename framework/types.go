package framework

import (
	"context"
	"maps"
	"slices"

	"github.com/GhostMeshIO/SillyAxioms/phase"
)

// DefaultName is the framework returned by Get for unknown names when present.
const DefaultName = "SEMANTIC_GRAVITY"

// Well-known metric keys.
const (
	MetricNovelty              = "novelty"
	MetricAlienness            = "alienness"
	MetricElegance             = "elegance"
	MetricDensity              = "density"
	MetricCoherence            = "coherence"
	MetricRicciScalar          = "ricci_scalar"
	MetricCosmologicalConstant = "cosmological_constant"
	MetricPlanckScale          = "planck_scale"
)

// Metrics maps metric names to values.
type Metrics map[string]float64

// Framework is one catalog entry.
type Framework struct {
	// Name uniquely identifies the framework within a catalog.
	Name string

	// Coordinate is the reference point in phase space.
	Coordinate phase.Coordinate

	// CorePattern, Mechanisms and Equations feed the text layer only.
	CorePattern string
	Mechanisms  []string
	Equations   []string

	// Metrics are the signature metrics; "ricci_scalar" is the signature curvature.
	Metrics Metrics

	// Keywords are used by seed matching outside this module.
	Keywords []string

	// Parents lists the source frameworks of a hybrid, in blend order.
	Parents []string
}

// SignatureCurvature returns the "ricci_scalar" metric, if any.
func (f Framework) SignatureCurvature() (float64, bool) {
	v, ok := f.Metrics[MetricRicciScalar]

	return v, ok
}

// Metric returns the named metric, or fallback when absent.
func (f Framework) Metric(name string, fallback float64) float64 {
	if v, ok := f.Metrics[name]; ok {
		return v
	}

	return fallback
}

// Clone returns a deep copy so catalog entries never alias caller memory.
func (f Framework) Clone() Framework {
	f.Mechanisms = slices.Clone(f.Mechanisms)
	f.Equations = slices.Clone(f.Equations)
	f.Keywords = slices.Clone(f.Keywords)
	f.Parents = slices.Clone(f.Parents)
	if f.Metrics != nil {
		f.Metrics = maps.Clone(f.Metrics)
	}

	return f
}

// Registry is the in-memory catalog view the numeric engine depends on.
type Registry interface {
	// Get returns the named framework or the default one. It never fails.
	Get(name string) Framework

	// Nearest returns the name of the framework closest to c.
	Nearest(c phase.Coordinate) string

	// Add inserts or overwrites f by name and marks it dirty.
	Add(f Framework) error

	// Names lists framework names in catalog order.
	Names() []string

	// Len returns the number of frameworks.
	Len() int

	// Coordinates lists reference coordinates in catalog order.
	Coordinates() []phase.Coordinate
}

// Persister stores frameworks outside the process.
type Persister interface {
	SaveFrameworks(ctx context.Context, fs []Framework) error
	LoadFrameworks(ctx context.Context) ([]Framework, error)
}
