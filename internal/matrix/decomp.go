package matrix

import (
	"errors"
	"fmt"
	"math"
)

// luFactor computes the partially pivoted factorization P·A = L·U in
// packed form: the returned matrix stores U on and above the diagonal
// and the multipliers of the unit lower triangle below it. perm maps
// each factored row to the original row it came from, and sign carries
// the permutation parity for determinants.
func (m *Dense) luFactor(op string) (lu *Dense, perm []int, sign float64, err error) {
	if err := m.requireSquare(op); err != nil {
		return nil, nil, 0, err
	}
	n := m.rows
	lu = m.Clone()
	a := lu.data
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1

	for k := 0; k < n; k++ {
		p := k
		best := math.Abs(a[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				best, p = v, i
			}
		}
		if best <= pivotEps {
			return nil, nil, 0, fmt.Errorf("%s: pivot %d vanishes: %w", op, k, ErrSingular)
		}
		if p != k {
			swapRows(a, n, p, k)
			perm[p], perm[k] = perm[k], perm[p]
			sign = -sign
		}
		piv := a[k*n+k]
		for i := k + 1; i < n; i++ {
			f := a[i*n+k] / piv
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}
	return lu, perm, sign, nil
}

// LU computes the factorization P·A = L·U with partial pivoting. L is
// unit lower triangular, U is upper triangular, and perm describes the
// row permutation P: row i of the factorization corresponds to row
// perm[i] of the original matrix.
func (m *Dense) LU() (l, u *Dense, perm []int, err error) {
	if err := validateNotNil("lu", m); err != nil {
		return nil, nil, nil, err
	}
	packed, perm, _, err := m.luFactor("lu")
	if err != nil {
		return nil, nil, nil, err
	}
	n := m.rows
	l = mustDense(n, n)
	u = mustDense(n, n)
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1
		copy(l.data[i*n:i*n+i], packed.data[i*n:i*n+i])
		copy(u.data[i*n+i:(i+1)*n], packed.data[i*n+i:(i+1)*n])
	}
	return l, u, perm, nil
}

// Det computes the determinant via LU factorization. A singular matrix
// has determinant zero, which is reported as a value rather than an
// error.
func (m *Dense) Det() (float64, error) {
	if err := validateNotNil("det", m); err != nil {
		return 0, err
	}
	packed, _, sign, err := m.luFactor("det")
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return 0, nil
		}
		return 0, err
	}
	n := m.rows
	det := sign
	for k := 0; k < n; k++ {
		det *= packed.data[k*n+k]
	}
	return det, nil
}

// Solve finds the matrix X with m · X = b using the LU factorization of
// the receiver. b must have as many rows as m; each of its columns is
// solved independently.
func (m *Dense) Solve(b *Dense) (*Dense, error) {
	if err := validateNotNil("solve", m, b); err != nil {
		return nil, err
	}
	if err := m.requireSquare("solve"); err != nil {
		return nil, err
	}
	if b.rows != m.rows {
		return nil, fmt.Errorf("solve: right-hand side has %d rows, want %d: %w",
			b.rows, m.rows, ErrShapeMismatch)
	}
	packed, perm, _, err := m.luFactor("solve")
	if err != nil {
		return nil, err
	}

	n, k := m.rows, b.cols
	x := mustDense(n, k)
	for i := 0; i < n; i++ {
		copy(x.data[i*k:(i+1)*k], b.data[perm[i]*k:(perm[i]+1)*k])
	}
	// forward substitution through the unit lower triangle
	for i := 1; i < n; i++ {
		for l := 0; l < i; l++ {
			f := packed.data[i*n+l]
			if f == 0 {
				continue
			}
			for j := 0; j < k; j++ {
				x.data[i*k+j] -= f * x.data[l*k+j]
			}
		}
	}
	// back substitution through the upper triangle
	for i := n - 1; i >= 0; i-- {
		for l := i + 1; l < n; l++ {
			f := packed.data[i*n+l]
			if f == 0 {
				continue
			}
			for j := 0; j < k; j++ {
				x.data[i*k+j] -= f * x.data[l*k+j]
			}
		}
		piv := packed.data[i*n+i]
		for j := 0; j < k; j++ {
			x.data[i*k+j] /= piv
		}
	}
	return x, nil
}

// SolveVec finds the vector x with m · x = b.
func (m *Dense) SolveVec(b []float64) ([]float64, error) {
	if err := validateNotNil("solve", m); err != nil {
		return nil, err
	}
	if len(b) != m.rows {
		return nil, fmt.Errorf("solve: right-hand side has %d entries, want %d: %w",
			len(b), m.rows, ErrShapeMismatch)
	}
	col := mustDense(m.rows, 1)
	copy(col.data, b)
	x, err := m.Solve(col)
	if err != nil {
		return nil, err
	}
	return x.Values(), nil
}

// GaussJordan reduces the augmented system [m | b] to reduced row
// echelon form and returns the matrix X with m · X = b. Pivots are
// chosen by largest magnitude within each column.
func (m *Dense) GaussJordan(b *Dense) (*Dense, error) {
	if err := validateNotNil("gauss-jordan", m, b); err != nil {
		return nil, err
	}
	if err := m.requireSquare("gauss-jordan"); err != nil {
		return nil, err
	}
	if b.rows != m.rows {
		return nil, fmt.Errorf("gauss-jordan: right-hand side has %d rows, want %d: %w",
			b.rows, m.rows, ErrShapeMismatch)
	}

	n, k := m.rows, b.cols
	a := m.Clone()
	x := b.Clone()
	for col := 0; col < n; col++ {
		p := col
		best := math.Abs(a.data[col*n+col])
		for i := col + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+col]); v > best {
				best, p = v, i
			}
		}
		if best <= pivotEps {
			return nil, fmt.Errorf("gauss-jordan: pivot %d vanishes: %w", col, ErrSingular)
		}
		if p != col {
			swapRows(a.data, n, p, col)
			swapRows(x.data, k, p, col)
		}
		piv := a.data[col*n+col]
		for j := col; j < n; j++ {
			a.data[col*n+j] /= piv
		}
		for j := 0; j < k; j++ {
			x.data[col*k+j] /= piv
		}
		for i := 0; i < n; i++ {
			if i == col {
				continue
			}
			f := a.data[i*n+col]
			if f == 0 {
				continue
			}
			for j := col; j < n; j++ {
				a.data[i*n+j] -= f * a.data[col*n+j]
			}
			for j := 0; j < k; j++ {
				x.data[i*k+j] -= f * x.data[col*k+j]
			}
		}
	}
	return x, nil
}

// Inverse computes m⁻¹ by Gauss-Jordan elimination against the identity.
func (m *Dense) Inverse() (*Dense, error) {
	if err := validateNotNil("inverse", m); err != nil {
		return nil, err
	}
	if err := m.requireSquare("inverse"); err != nil {
		return nil, err
	}
	eye := mustDense(m.rows, m.rows)
	for i := 0; i < m.rows; i++ {
		eye.data[i*m.rows+i] = 1
	}
	inv, err := m.GaussJordan(eye)
	if err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}
	return inv, nil
}

// Cholesky computes the lower triangular L with m = L·Lᵀ. The receiver
// must be symmetric positive definite; asymmetric input and
// non-positive leading minors both report ErrNotPositiveDefinite.
func (m *Dense) Cholesky() (*Dense, error) {
	if err := validateNotNil("cholesky", m); err != nil {
		return nil, err
	}
	if err := m.requireSquare("cholesky"); err != nil {
		return nil, err
	}
	n := m.rows
	a := m.data
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a[i*n+j] != a[j*n+i] {
				return nil, fmt.Errorf("cholesky: entries (%d,%d) and (%d,%d) differ: %w",
					i, j, j, i, ErrNotPositiveDefinite)
			}
		}
	}

	l := mustDense(n, n)
	for j := 0; j < n; j++ {
		d := a[j*n+j]
		for k := 0; k < j; k++ {
			d -= l.data[j*n+k] * l.data[j*n+k]
		}
		if d <= pivotEps {
			return nil, fmt.Errorf("cholesky: leading minor %d is not positive: %w",
				j, ErrNotPositiveDefinite)
		}
		root := math.Sqrt(d)
		l.data[j*n+j] = root
		for i := j + 1; i < n; i++ {
			s := a[i*n+j]
			for k := 0; k < j; k++ {
				s -= l.data[i*n+k] * l.data[j*n+k]
			}
			l.data[i*n+j] = s / root
		}
	}
	return l, nil
}

// swapRows exchanges rows i and j of a flat row-major block with the
// given row stride.
func swapRows(data []float64, stride, i, j int) {
	ri := data[i*stride : (i+1)*stride]
	rj := data[j*stride : (j+1)*stride]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
