// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/axon-ml/axon/matrix"
	"github.com/axon-ml/axon/ndarray"
)

// TestPublicAPI exercises the exported surface end to end: construction,
// products, factorization and solving.
func TestPublicAPI(t *testing.T) {
	a, err := matrix.FromSlices([][]float64{{3, 2}, {1, 4}})
	if err != nil {
		t.Fatalf("FromSlices failed: %v", err)
	}

	// Determinant of [[3,2],[1,4]] is 10.
	d, err := a.Det()
	if err != nil || math.Abs(d-10) > 1e-9 {
		t.Errorf("Det() = %v, %v, want 10", d, err)
	}

	// Solving returns the exact small-system answer.
	x, err := a.SolveVec([]float64{18, 16})
	if err != nil {
		t.Fatalf("SolveVec failed: %v", err)
	}
	if math.Abs(x[0]-4) > 1e-9 || math.Abs(x[1]-3) > 1e-9 {
		t.Errorf("SolveVec = %v, want [4 3]", x)
	}

	// A times its inverse is the identity.
	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}
	p, err := a.MatMul(inv)
	if err != nil {
		t.Fatalf("MatMul failed: %v", err)
	}
	eye, err := matrix.Identity(2)
	if err != nil {
		t.Fatalf("Identity failed: %v", err)
	}
	pv, ev := p.Values(), eye.Values()
	for i := range ev {
		if math.Abs(pv[i]-ev[i]) > 1e-9 {
			t.Errorf("A·A⁻¹ values[%d] = %v, want %v", i, pv[i], ev[i])
		}
	}
}

// TestArrayInterop verifies that matrices and arrays share storage when
// adopted without a copy.
func TestArrayInterop(t *testing.T) {
	arr, err := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	m, err := matrix.FromArray(arr)
	if err != nil {
		t.Fatalf("FromArray failed: %v", err)
	}

	// The adopted array is aliased, not copied.
	if !m.Array().SharesDataWith(arr) {
		t.Error("FromArray should alias contiguous float64 input")
	}

	// A write through the matrix is visible through the array.
	if err := m.Set(0, 1, 42); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := arr.At(0, 1)
	if err != nil || v != 42 {
		t.Errorf("At(0,1) = %v, %v, want 42", v, err)
	}
}

// TestErrorSentinels verifies errors.Is matching through the facade.
func TestErrorSentinels(t *testing.T) {
	m, err := matrix.FromSlices([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("FromSlices failed: %v", err)
	}

	// Factoring a rectangular matrix.
	if _, _, _, err := m.LU(); !errors.Is(err, matrix.ErrNotSquare) {
		t.Errorf("LU error = %v, want ErrNotSquare", err)
	}

	// Adding mismatched shapes.
	o, err := matrix.NewDense(3, 2)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	if _, err := m.Add(o); !errors.Is(err, matrix.ErrShapeMismatch) {
		t.Errorf("Add error = %v, want ErrShapeMismatch", err)
	}

	// Factoring a singular matrix.
	s, err := matrix.FromSlices([][]float64{{1, 2}, {2, 4}})
	if err != nil {
		t.Fatalf("FromSlices failed: %v", err)
	}
	if _, err := s.Inverse(); !errors.Is(err, matrix.ErrSingular) {
		t.Errorf("Inverse error = %v, want ErrSingular", err)
	}

	// Cholesky on an indefinite matrix.
	ind, err := matrix.FromSlices([][]float64{{1, 2}, {2, 1}})
	if err != nil {
		t.Fatalf("FromSlices failed: %v", err)
	}
	if _, err := ind.Cholesky(); !errors.Is(err, matrix.ErrNotPositiveDefinite) {
		t.Errorf("Cholesky error = %v, want ErrNotPositiveDefinite", err)
	}

	// Nil operands.
	if _, err := m.MatMul(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Errorf("MatMul error = %v, want ErrNilMatrix", err)
	}

	// Index errors surface the array engine sentinel unchanged.
	if _, err := m.At(9, 9); !errors.Is(err, ndarray.ErrIndexOutOfBounds) {
		t.Errorf("At error = %v, want ndarray.ErrIndexOutOfBounds", err)
	}
}
