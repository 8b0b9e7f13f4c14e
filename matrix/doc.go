// Package matrix provides the small dense linear-algebra kernel used by the
// phase-space engine: a row-major Dense matrix and a Jacobi eigen solver for
// real symmetric matrices.
//
// 🚀 Why a local kernel?
//
//	The engine only ever manipulates 5×5 tensors (Hessians, diagonal Ricci
//	tensors, spectral checks). A flat []float64 with explicit bounds checks
//	is enough and keeps the numeric policy in one place.
//
// ✨ Key features:
//   - Dense: row-major storage, At/Set with ErrIndexOutOfBounds, Clone
//   - NewIdentity / NewDiagonal / NewFromRows constructors
//   - IsSymmetric(eps) structural check
//   - Eigen: cyclic-pivot Jacobi rotations, eigenvalues + eigenvectors
//   - EigenValuesDesc: eigenvalues only, sorted descending
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewDiagonal([]float64{3, 2, 1})
//	vals, err := matrix.EigenValuesDesc(m, matrix.DefaultEigenTolerance, matrix.DefaultEigenMaxIter)
//
// Complexity:
//   - At/Set: O(1)
//   - Eigen:  O(n²) per rotation, O(maxIter·n²) worst case; Memory O(n²)
package matrix
