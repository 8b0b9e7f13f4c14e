package golden

import (
	"fmt"
	"math"
	"sort"

	"github.com/GhostMeshIO/SillyAxioms/matrix"
)

const (
	// Phi is the golden ratio (1+√5)/2.
	Phi = 1.618033988749894848204586834365638117720309179805762862135

	// InversePhi is 1/φ = φ − 1.
	InversePhi = Phi - 1

	// Tolerance bounds |x − φ| (or |x − 1/φ| for ratios) for a golden match.
	Tolerance = 0.05

	// SophiaTolerance bounds |coherence − 1/φ| for a sophia point.
	SophiaTolerance = 0.015

	// zeroDenominator skips ratios whose denominator is numerically zero.
	zeroDenominator = 1e-12
)

// IsGolden reports whether ricci lies within Tolerance of φ, or whether any
// pairwise ratio among components lies within Tolerance of φ or 1/φ.
// Non-finite inputs never match.
func IsGolden(ricci float64, components ...float64) bool {
	if near(ricci, Phi) {
		return true
	}

	return hasGoldenRatio(components)
}

// IsGoldenSpectrum sorts a copy of eigs descending and checks every pairwise
// ratio against φ and 1/φ.
func IsGoldenSpectrum(eigs []float64) bool {
	sorted := append([]float64(nil), eigs...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	return hasGoldenRatio(sorted)
}

// IsGoldenMatrix computes the eigenvalues of the symmetric matrix m and
// applies IsGoldenSpectrum. Non-square or asymmetric input is an error.
func IsGoldenMatrix(m *matrix.Dense) (bool, error) {
	eigs, err := matrix.EigenValuesDesc(m, matrix.DefaultEigenTolerance, matrix.DefaultEigenMaxIter)
	if err != nil {
		return false, fmt.Errorf("IsGoldenMatrix: %w", err)
	}

	return hasGoldenRatio(eigs), nil
}

// Alignment returns |coherence − 1/φ|.
func Alignment(coherence float64) float64 {
	return math.Abs(coherence - InversePhi)
}

// IsSophiaCoherence reports whether coherence is within SophiaTolerance of 1/φ.
func IsSophiaCoherence(coherence float64) bool {
	return Alignment(coherence) < SophiaTolerance
}

func near(x, target float64) bool {
	return !math.IsNaN(x) && math.Abs(x-target) < Tolerance
}

// hasGoldenRatio checks vals[i]/vals[j] for every i < j.
func hasGoldenRatio(vals []float64) bool {
	var (
		i, j int
		r    float64
	)
	for i = 0; i < len(vals); i++ {
		for j = i + 1; j < len(vals); j++ {
			if math.Abs(vals[j]) < zeroDenominator {
				continue
			}
			r = vals[i] / vals[j]
			if near(r, Phi) || near(r, InversePhi) {
				return true
			}
		}
	}

	return false
}
