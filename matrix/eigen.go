package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Numeric policy for the Jacobi solver.
const (
	// DefaultEigenTolerance is the off-diagonal magnitude below which a sweep stops.
	DefaultEigenTolerance = 1e-12

	// DefaultEigenMaxIter caps the number of single rotations.
	DefaultEigenMaxIter = 1000

	// symmetryEpsilon bounds |a[i,j] − a[j,i]| on input validation.
	symmetryEpsilon = 1e-9
)

// Eigen computes all eigenvalues and eigenvectors of a real symmetric matrix
// using Jacobi rotations. It returns eigenvalues in diagonal order and Q whose
// columns are the matching eigenvectors. m is not modified.
//
// Returns ErrNonSquare, ErrNotSymmetric, or ErrEigenFailed.
// Complexity: O(n²) per rotation, worst-case O(maxIter·n²); Memory: O(n²).
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	// Stage 1: Validate input
	if m.r != m.c {
		return nil, nil, fmt.Errorf("Eigen: non-square %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	if !m.IsSymmetric(math.Max(tol, symmetryEpsilon)) {
		return nil, nil, fmt.Errorf("Eigen: %w", ErrNotSymmetric)
	}

	// Stage 2: Prepare A (work) and Q (eigenvectors)
	n := m.r
	A := m.Clone()
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}

	// Stage 3: Execute Jacobi rotations
	var (
		iter, i, j         int     // counters
		p, q               int     // pivot indices
		maxOff, off        float64 // largest |A[p,q]| and a temporary
		app, aqq, apq      float64 // pivot block entries
		aip, aiq, qip, qiq float64 // row/column temporaries
		theta, t, c, s     float64 // rotation parameters
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: find the largest off-diagonal |A[p,q]|
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(A.data[i*n+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		// J.2: converged
		if maxOff < tol {
			break
		}

		// J.3: rotation angle that annihilates A[p,q]
		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate rows/columns p and q
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.data[i*n+p]
			aiq = A.data[i*n+q]
			A.data[i*n+p] = c*aip - s*aiq
			A.data[p*n+i] = A.data[i*n+p]
			A.data[i*n+q] = s*aip + c*aiq
			A.data[q*n+i] = A.data[i*n+q]
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q] = 0
		A.data[q*n+p] = 0

		// J.5: accumulate into Q
		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}
	if iter == maxIter {
		return nil, nil, fmt.Errorf("Eigen: %d rotations: %w", maxIter, ErrEigenFailed)
	}

	// Stage 4: diagonal entries are the eigenvalues
	return A.Diagonal(), Q, nil
}

// EigenValuesDesc returns the eigenvalues of the symmetric matrix m sorted
// from largest to smallest.
func EigenValuesDesc(m *Dense, tol float64, maxIter int) ([]float64, error) {
	vals, _, err := Eigen(m, tol, maxIter)
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))

	return vals, nil
}
