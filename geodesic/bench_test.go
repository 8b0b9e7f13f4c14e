package geodesic_test

import (
	"testing"

	"github.com/GhostMeshIO/SillyAxioms/field"
	"github.com/GhostMeshIO/SillyAxioms/geodesic"
	"github.com/GhostMeshIO/SillyAxioms/phase"
)

// BenchmarkSolve_OnAxis integrates a path that reaches its event.
func BenchmarkSolve_OnAxis(b *testing.B) {
	m, err := field.NewModel(field.WithAttractor(center))
	if err != nil {
		b.Fatal(err)
	}
	opts := geodesic.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = geodesic.Solve(m, center, east, &opts)
	}
}

// BenchmarkSolve_Fallback integrates to MaxParameter without an event.
func BenchmarkSolve_Fallback(b *testing.B) {
	m, err := field.NewModel(field.WithAttractor(center))
	if err != nil {
		b.Fatal(err)
	}
	opts := geodesic.DefaultOptions()
	start := phase.New(0.9, 0.8, 0.95, 0.4, 0.85)
	end := phase.New(0.5, 0.4, 0.3, 0.6, 0.7)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = geodesic.Solve(m, start, end, &opts)
	}
}
