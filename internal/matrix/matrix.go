// Package matrix implements dense 2-D linear algebra on top of the
// ndarray engine: element-wise arithmetic, matrix products, and the
// classic factorizations (LU, Cholesky) with the solvers built on them.
package matrix

import (
	"fmt"
	"slices"

	"github.com/axon-ml/axon/internal/ndarray"
)

// Dense is a dense row-major matrix of float64 values backed by a 2-D
// ndarray. The backing array is always contiguous; At, Set and Array
// expose it directly, while the numeric kernels index its flat storage.
type Dense struct {
	arr  *ndarray.Array
	data []float64
	rows int
	cols int
}

// NewDense creates a zero-filled rows×cols matrix. Both dimensions must
// be positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("new dense: dimensions %d×%d must be positive: %w",
			rows, cols, ErrShapeMismatch)
	}
	arr, err := ndarray.Zeros(ndarray.Shape{rows, cols})
	if err != nil {
		return nil, fmt.Errorf("new dense: %w", err)
	}
	return wrap(arr), nil
}

// FromSlices creates a matrix from rows of values. The rows must be
// non-empty and of equal length.
func FromSlices(rows [][]float64) (*Dense, error) {
	arr, err := ndarray.FromNested(rows)
	if err != nil {
		return nil, fmt.Errorf("from slices: %w", err)
	}
	if arr.NDim() != 2 || arr.Size() == 0 {
		return nil, fmt.Errorf("from slices: input is not a non-empty 2-D table: %w",
			ErrShapeMismatch)
	}
	return wrap(arr), nil
}

// FromArray adopts a 2-D array as a matrix. A contiguous writable
// float64 array is aliased, so writes through either side are visible to
// both; anything else (views with exotic strides, other dtypes,
// read-only arrays) is materialized into fresh storage first.
func FromArray(a *ndarray.Array) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("from array: %w", ErrNilMatrix)
	}
	if a.NDim() != 2 {
		return nil, fmt.Errorf("from array: got %d dimensions, want 2: %w",
			a.NDim(), ErrShapeMismatch)
	}
	shape := a.Shape()
	if shape[0] == 0 || shape[1] == 0 {
		return nil, fmt.Errorf("from array: dimensions %d×%d must be positive: %w",
			shape[0], shape[1], ErrShapeMismatch)
	}

	if a.DType() == ndarray.Float64 && a.IsContiguous() && !a.ReadOnly() {
		return wrap(a), nil
	}
	vals := a.Values()
	arr, err := ndarray.FromSlice(vals, shape)
	if err != nil {
		return nil, fmt.Errorf("from array: %w", err)
	}
	return wrap(arr), nil
}

// Identity creates the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("identity: size %d must be positive: %w", n, ErrShapeMismatch)
	}
	arr, err := ndarray.Eye(n)
	if err != nil {
		return nil, fmt.Errorf("identity: %w", err)
	}
	return wrap(arr), nil
}

// wrap adopts a contiguous float64 array without further checks.
func wrap(arr *ndarray.Array) *Dense {
	shape := arr.Shape()
	win := arr.AsFloat64()[arr.Offset() : arr.Offset()+arr.Size()]
	return &Dense{arr: arr, data: win, rows: shape[0], cols: shape[1]}
}

// mustDense builds a zero matrix for dimensions already validated by the
// caller. It panics on failure, which would indicate a bug here rather
// than bad input.
func mustDense(rows, cols int) *Dense {
	m, err := NewDense(rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at row i, column j. Negative indices resolve
// from the end, as in the array engine.
func (m *Dense) At(i, j int) (float64, error) {
	return m.arr.At(i, j)
}

// Set stores v at row i, column j.
func (m *Dense) Set(i, j int, v float64) error {
	return m.arr.Set(v, i, j)
}

// Array returns the backing 2-D array. It shares storage with the
// matrix: writes through either side are visible to both.
func (m *Dense) Array() *ndarray.Array {
	return m.arr
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 {
		i += m.rows
	}
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("row: index %d out of range for %d rows: %w",
			i, m.rows, ndarray.ErrIndexOutOfBounds)
	}
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 {
		j += m.cols
	}
	if j < 0 || j >= m.cols {
		return nil, fmt.Errorf("col: index %d out of range for %d columns: %w",
			j, m.cols, ndarray.ErrIndexOutOfBounds)
	}
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+j]
	}
	return out, nil
}

// Values returns a copy of the elements in row-major order.
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy that shares nothing with the receiver.
func (m *Dense) Clone() *Dense {
	return wrap(m.arr.Copy())
}

// Equal reports whether two matrices have the same dimensions and
// exactly equal elements.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	return slices.Equal(m.data, other.data)
}

// String returns a compact description of the matrix dimensions.
func (m *Dense) String() string {
	return fmt.Sprintf("Dense(%d×%d)", m.rows, m.cols)
}
