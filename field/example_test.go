package field_test

import (
	"fmt"

	"github.com/GhostMeshIO/SillyAxioms/field"
	"github.com/GhostMeshIO/SillyAxioms/phase"
)

// ExampleModel_Curvature evaluates the field at its own attractor, where
// R = 80k and ΔΩ = −10k.
func ExampleModel_Curvature() {
	m, err := field.NewModel(field.WithAttractor(phase.Center()), field.WithScale(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	c := m.Curvature(phase.Center())
	fmt.Printf("R=%.1f ΔΩ=%.1f\n", c.RicciScalar, c.LaplacianOmega)
	// Output: R=80.0 ΔΩ=-10.0
}
