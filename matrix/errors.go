package matrix

import "errors"

// Every message is prefixed with "matrix: " so it can be grepped in logs.
// Callers match with errors.Is; wrappers add context via fmt.Errorf("%w").
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotSymmetric signals |a[i,j] − a[j,i]| above the tolerance.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrRaggedRows is returned by NewFromRows when rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEigenFailed indicates the Jacobi sweep did not converge within maxIter.
	ErrEigenFailed = errors.New("matrix: eigen decomposition did not converge")
)
