package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity returns the n×n identity.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewDiagonal returns a square matrix with diag on its main diagonal.
func NewDiagonal(diag []float64) (*Dense, error) {
	n := len(diag)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range diag {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, denseErrorf("NewDiagonal", i, i, ErrNaNInf)
		}
		m.data[i*n+i] = v
	}

	return m, nil
}

// NewFromRows copies a rectangular [][]float64 into a Dense.
// Returns ErrInvalidDimensions for empty input, ErrRaggedRows for ragged input
// and ErrNaNInf for non-finite entries.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("NewFromRows", i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Non-finite values are rejected.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Diagonal returns a copy of the main diagonal.
func (m *Dense) Diagonal() []float64 {
	n := min(m.r, m.c)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// Trace returns Σ a[i,i].
func (m *Dense) Trace() float64 {
	var sum float64
	for _, v := range m.Diagonal() {
		sum += v
	}

	return sum
}

// IsSymmetric reports whether m is square and |a[i,j] − a[j,i]| ≤ eps everywhere.
func (m *Dense) IsSymmetric(eps float64) bool {
	if m.r != m.c {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if math.Abs(m.data[i*m.c+j]-m.data[j*m.c+i]) > eps {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
