package matrix

import (
	"fmt"

	"github.com/axon-ml/axon/internal/ndarray"
	"github.com/axon-ml/axon/internal/parallel"
)

// parallelFlopThreshold is the per-call multiply-add count past which a
// kernel spreads its output rows across goroutines.
const parallelFlopThreshold = 1 << 16

// Add returns the element-wise sum m + other. Unlike the array engine,
// matrix arithmetic never broadcasts: the shapes must match exactly.
func (m *Dense) Add(other *Dense) (*Dense, error) {
	return m.zipWith("add", other, (*ndarray.Array).Add)
}

// Sub returns the element-wise difference m - other.
func (m *Dense) Sub(other *Dense) (*Dense, error) {
	return m.zipWith("subtract", other, (*ndarray.Array).Sub)
}

// Hadamard returns the element-wise product m ∘ other.
func (m *Dense) Hadamard(other *Dense) (*Dense, error) {
	return m.zipWith("hadamard", other, (*ndarray.Array).Mul)
}

// Scale returns m with every element multiplied by s.
func (m *Dense) Scale(s float64) (*Dense, error) {
	if err := validateNotNil("scale", m); err != nil {
		return nil, err
	}
	out, err := m.arr.MulScalar(s)
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	return wrap(out), nil
}

// MatMul returns the matrix product m · other. The inner dimensions
// must agree. Large products run one output row per kernel call across
// goroutines; rows write disjoint slices of the result.
func (m *Dense) MatMul(other *Dense) (*Dense, error) {
	if err := validateNotNil("matmul", m, other); err != nil {
		return nil, err
	}
	if m.cols != other.rows {
		return nil, fmt.Errorf("matmul: %d×%d · %d×%d: %w",
			m.rows, m.cols, other.rows, other.cols, ErrShapeMismatch)
	}
	out := mustDense(m.rows, other.cols)
	n, k, p := m.rows, m.cols, other.cols
	rowKernel := func(i int) {
		dst := out.data[i*p : (i+1)*p]
		for l := 0; l < k; l++ {
			f := m.data[i*k+l]
			if f == 0 {
				continue
			}
			row := other.data[l*p : (l+1)*p]
			for j, v := range row {
				dst[j] += f * v
			}
		}
	}
	if n*k*p >= parallelFlopThreshold {
		parallel.For(n, parallel.Default(), rowKernel)
	} else {
		for i := 0; i < n; i++ {
			rowKernel(i)
		}
	}
	return out, nil
}

// MulVec returns the matrix-vector product m · v.
func (m *Dense) MulVec(v []float64) ([]float64, error) {
	if err := validateNotNil("mulvec", m); err != nil {
		return nil, err
	}
	if len(v) != m.cols {
		return nil, fmt.Errorf("mulvec: vector length %d does not match %d columns: %w",
			len(v), m.cols, ErrShapeMismatch)
	}
	out := make([]float64, m.rows)
	dot := func(i int) {
		row := m.data[i*m.cols : (i+1)*m.cols]
		var s float64
		for j, a := range row {
			s += a * v[j]
		}
		out[i] = s
	}
	if m.rows*m.cols >= parallelFlopThreshold {
		parallel.For(m.rows, parallel.Default(), dot)
	} else {
		for i := range out {
			dot(i)
		}
	}
	return out, nil
}

// T returns the transpose as a new matrix with its own storage.
func (m *Dense) T() *Dense {
	out := mustDense(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// zipWith validates operands and delegates an element-wise operation to
// the array engine. Same-shape checking happens here so that the engine
// never gets a chance to broadcast mismatched matrices.
func (m *Dense) zipWith(op string, other *Dense, f func(*ndarray.Array, *ndarray.Array) (*ndarray.Array, error)) (*Dense, error) {
	if err := validateNotNil(op, m, other); err != nil {
		return nil, err
	}
	if err := requireSameShape(op, m, other); err != nil {
		return nil, err
	}
	out, err := f(m.arr, other.arr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return wrap(out), nil
}
