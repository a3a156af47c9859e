package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for the linear-algebra surface. Index and ingestion
// errors from the underlying array engine (ndarray.ErrIndexOutOfBounds,
// ndarray.ErrInvalidParameter) pass through unchanged; the sentinels here
// cover failures specific to matrix mathematics. Match with errors.Is.
var (
	// ErrNilMatrix reports a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrShapeMismatch reports operand dimensions that do not line up,
	// such as Add on different shapes or MatMul with an inner mismatch.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare reports a non-square input to an operation that
	// requires one, such as LU, Det or Inverse.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular reports a matrix whose pivots vanish during
	// factorization, so it cannot be inverted or solved against.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite reports a Cholesky input that is not
	// symmetric positive definite.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")
)

// pivotEps is the magnitude below which a pivot is treated as zero
// during factorization and elimination.
const pivotEps = 1e-12

func validateNotNil(op string, ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return fmt.Errorf("%s: %w", op, ErrNilMatrix)
		}
	}
	return nil
}

func (m *Dense) requireSquare(op string) error {
	if m.rows != m.cols {
		return fmt.Errorf("%s: %d×%d: %w", op, m.rows, m.cols, ErrNotSquare)
	}
	return nil
}

func requireSameShape(op string, a, b *Dense) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("%s: %d×%d and %d×%d: %w",
			op, a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)
	}
	return nil
}
