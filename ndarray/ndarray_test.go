// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"errors"
	"testing"

	"github.com/axon-ml/axon/ndarray"
)

// TestPublicAPI exercises the exported surface end to end: creation,
// views, broadcasting, reductions and error matching.
func TestPublicAPI(t *testing.T) {
	a, err := ndarray.FromNested([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}

	// Shape and metadata.
	if !a.Shape().Equal(ndarray.Shape{2, 2}) {
		t.Errorf("Shape() = %v, want [2 2]", a.Shape())
	}
	if a.DType() != ndarray.Float64 {
		t.Errorf("DType() = %v, want Float64", a.DType())
	}

	// Zero-copy transpose shares the buffer.
	tr := a.T()
	if !tr.SharesDataWith(a) {
		t.Error("T() should share data with the source")
	}

	// Broadcasting: {2,2} + {2} stretches the vector across rows.
	v, err := ndarray.FromSlice([]float64{10, 20}, ndarray.Shape{2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	sum, err := a.Add(v)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	got := sum.Values()
	want := []float64{11, 22, 13, 24}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Add values[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Axis reduction.
	cols, err := a.SumAxis(0)
	if err != nil {
		t.Fatalf("SumAxis failed: %v", err)
	}
	cv := cols.Values()
	if cv[0] != 4 || cv[1] != 6 {
		t.Errorf("SumAxis(0) = %v, want [4 6]", cv)
	}

	// Whole-array reduction.
	total, err := a.Sum()
	if err != nil || total != 10 {
		t.Errorf("Sum() = %v, %v, want 10", total, err)
	}
}

// TestSliceAliasing verifies that slices taken through the public API
// stay views onto the source.
func TestSliceAliasing(t *testing.T) {
	a, err := ndarray.Arange(0, 6, 1)
	if err != nil {
		t.Fatalf("Arange failed: %v", err)
	}
	m, err := a.Reshape(2, 3)
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}

	row, err := m.Slice(ndarray.S(1))
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if err := row.Set(99, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, _ := m.At(1, 0); got != 99 {
		t.Errorf("At(1,0) = %v after slice write, want 99", got)
	}
}

// TestErrorSentinels verifies the exported sentinels match errors
// produced by operations.
func TestErrorSentinels(t *testing.T) {
	a, _ := ndarray.Zeros(ndarray.Shape{3, 4})
	b, _ := ndarray.Zeros(ndarray.Shape{2, 4})

	if _, err := a.Add(b); !errors.Is(err, ndarray.ErrDimensionMismatch) {
		t.Errorf("incompatible Add = %v, want ErrDimensionMismatch", err)
	}

	if _, err := a.At(5, 0); !errors.Is(err, ndarray.ErrIndexOutOfBounds) {
		t.Errorf("At(5,0) = %v, want ErrIndexOutOfBounds", err)
	}

	ro, _ := ndarray.Zeros(ndarray.Shape{2}, ndarray.AsReadOnly())
	if err := ro.Set(1, 0); !errors.Is(err, ndarray.ErrInvalidState) {
		t.Errorf("Set on read-only = %v, want ErrInvalidState", err)
	}

	if _, err := ndarray.Eye(-1); !errors.Is(err, ndarray.ErrInvalidParameter) {
		t.Errorf("Eye(-1) = %v, want ErrInvalidParameter", err)
	}

	z, _ := ndarray.Zeros(ndarray.Shape{2})
	if _, err := z.DivScalar(0); !errors.Is(err, ndarray.ErrMathDomain) {
		t.Errorf("DivScalar(0) = %v, want ErrMathDomain", err)
	}
}

// TestBroadcastHelpers verifies the shape-level broadcasting API.
func TestBroadcastHelpers(t *testing.T) {
	out, needs, err := ndarray.BroadcastShapes(ndarray.Shape{3, 1}, ndarray.Shape{1, 4})
	if err != nil {
		t.Fatalf("BroadcastShapes failed: %v", err)
	}
	if !out.Equal(ndarray.Shape{3, 4}) || !needs {
		t.Errorf("BroadcastShapes = %v, %v, want [3 4], true", out, needs)
	}

	if ndarray.CanBroadcast(ndarray.Shape{3, 4}, ndarray.Shape{2, 4}) {
		t.Error("CanBroadcast({3,4}, {2,4}) = true, want false")
	}
}
