package field_test

import (
	"testing"

	"github.com/GhostMeshIO/SillyAxioms/field"
	"github.com/GhostMeshIO/SillyAxioms/framework"
	"github.com/GhostMeshIO/SillyAxioms/phase"
)

// BenchmarkModel_Curvature measures one full curvature evaluation.
func BenchmarkModel_Curvature(b *testing.B) {
	m, err := field.NewModel(field.WithCentroidOf(framework.MustDefault()))
	if err != nil {
		b.Fatal(err)
	}
	x := phase.New(0.9, 0.8, 0.95, 0.4, 0.85).Tuple()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.CurvatureAt(x)
	}
}

// BenchmarkModel_Acceleration measures the geodesic right-hand side.
func BenchmarkModel_Acceleration(b *testing.B) {
	m, err := field.NewModel(field.WithAttractor(phase.Center()))
	if err != nil {
		b.Fatal(err)
	}
	x := phase.New(0.2, 1.1, 0.7, 0.3, 0.6).Tuple()
	v := [phase.Dim]float64{0.3, -0.2, 0.1, 0.5, -0.4}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Acceleration(x, v)
	}
}
