package framework

import (
	"bytes"
	_ "embed"

	"github.com/GhostMeshIO/SillyAxioms/phase"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Default returns a fresh catalog holding the five built-in frameworks.
// Should the embedded document ever fail to decode, a single hard-coded
// SEMANTIC_GRAVITY entry is used instead, so the result is never empty.
func Default() (*Catalog, error) {
	fs, err := Decode(bytes.NewReader(defaultsYAML))
	if err != nil {
		return NewCatalog(minimal())
	}

	return NewCatalog(fs...)
}

// MustDefault is Default for call sites that cannot handle an error.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}

	return c
}

func minimal() Framework {
	return Framework{
		Name:        DefaultName,
		Coordinate:  phase.New(0.9, 0.8, 0.95, 0.4, 0.85),
		CorePattern: "(semantic_field) creates (geometric_structure)",
		Mechanisms:  []string{"Semantic tensor curvature"},
		Metrics: Metrics{
			MetricElegance:    92.0,
			MetricCoherence:   0.618,
			MetricRicciScalar: -0.12,
		},
		Keywords: []string{"meaning", "semantic", "curvature"},
	}
}
