package ndarray

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/x448/float16"
)

// Test helpers shared across the package.

// must unwraps a (value, error) pair, aborting the test binary on error.
// Keeps constructor plumbing out of the assertions.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func assertShape(t *testing.T, want, got Shape, ctx string) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s: shape = %v, want %v", ctx, got, want)
	}
}

func assertValues(t *testing.T, a *Array, want []float64, ctx string) {
	t.Helper()
	got := a.Values()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d values, want %d", ctx, len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("%s: values[%d] = %v, want %v", ctx, i, got[i], want[i])
		}
	}
}

// Array Tests

func TestFromSliceBasics(t *testing.T) {
	a := must(FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}))

	assertShape(t, Shape{2, 3}, a.Shape(), "FromSlice")
	if a.DType() != Float64 {
		t.Errorf("DType = %s, want float64", a.DType())
	}
	if a.Size() != 6 || a.NDim() != 2 || a.ByteSize() != 48 {
		t.Errorf("Size/NDim/ByteSize = %d/%d/%d, want 6/2/48", a.Size(), a.NDim(), a.ByteSize())
	}
	if !slices.Equal(a.Strides(), []int{3, 1}) {
		t.Errorf("Strides = %v, want [3 1]", a.Strides())
	}
	if !a.IsContiguous() {
		t.Error("fresh array should be contiguous")
	}

	v, err := a.At(1, 2)
	if err != nil || v != 6 {
		t.Errorf("At(1,2) = %v, %v, want 6", v, err)
	}
	v, err = a.At(-1, -1)
	if err != nil || v != 6 {
		t.Errorf("At(-1,-1) = %v, %v, want 6", v, err)
	}
}

func TestFromSliceErrors(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3, 4, 5}, Shape{2, 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("size mismatch error = %v, want ErrDimensionMismatch", err)
	}

	_, err = FromSlice([]float64{1, math.NaN()}, Shape{2})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NaN error = %v, want ErrInvalidParameter", err)
	}
	_, err = FromSlice([]float64{math.Inf(1)}, Shape{1})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Inf error = %v, want ErrInvalidParameter", err)
	}

	_, err = FromSlice([]float64{1, 2}, Shape{-2})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative dim error = %v, want ErrInvalidParameter", err)
	}
}

func TestDataTypeInference(t *testing.T) {
	if a := must(FromSlice([]float32{1, 2}, Shape{2})); a.DType() != Float32 {
		t.Errorf("float32 inferred as %s", a.DType())
	}
	if a := must(FromSlice([]int32{1, 2}, Shape{2})); a.DType() != Int32 {
		t.Errorf("int32 inferred as %s", a.DType())
	}
	if a := must(FromSlice([]int16{1}, Shape{1})); a.DType() != Int16 {
		t.Errorf("int16 inferred as %s", a.DType())
	}
	if a := must(FromSlice([]uint8{1}, Shape{1})); a.DType() != Uint8 {
		t.Errorf("uint8 inferred as %s", a.DType())
	}

	h := must(FromSlice([]float16.Float16{float16.Fromfloat32(1.5)}, Shape{1}))
	if h.DType() != Float16 {
		t.Fatalf("float16 inferred as %s", h.DType())
	}
	if v, _ := h.At(0); v != 1.5 {
		t.Errorf("float16 At(0) = %v, want 1.5", v)
	}
}

func TestFromSliceWithDType(t *testing.T) {
	a := must(FromSlice([]float64{2.9, -2.9, 100}, Shape{3}, WithDType(Int16)))
	if a.DType() != Int16 {
		t.Fatalf("DType = %s, want int16", a.DType())
	}
	assertValues(t, a, []float64{2, -2, 100}, "truncation toward zero")
}

func TestDataTypeProperties(t *testing.T) {
	tests := []struct {
		dt   DataType
		name string
		size int
	}{
		{Float64, "float64", 8},
		{Float32, "float32", 4},
		{Float16, "float16", 2},
		{Int32, "int32", 4},
		{Int16, "int16", 2},
		{Int8, "int8", 1},
		{Uint32, "uint32", 4},
		{Uint16, "uint16", 2},
		{Uint8, "uint8", 1},
	}
	for _, tt := range tests {
		if tt.dt.String() != tt.name || tt.dt.Size() != tt.size {
			t.Errorf("DataType %d: String/Size = %s/%d, want %s/%d",
				int(tt.dt), tt.dt.String(), tt.dt.Size(), tt.name, tt.size)
		}
	}
	if DataType(99).String() != "unknown" || DataType(99).Size() != 0 {
		t.Error("out-of-range DataType should be unknown with size 0")
	}
}

func TestPromoteDataType(t *testing.T) {
	tests := []struct {
		a, b, want DataType
	}{
		{Float64, Float64, Float64},
		{Float32, Float64, Float64},
		{Float16, Float32, Float32},
		{Int32, Float32, Float32},
		{Uint8, Float16, Float16},
		{Int32, Int32, Int32},
		{Int16, Uint8, Float64},
	}
	for _, tt := range tests {
		if got := promoteDataType(tt.a, tt.b); got != tt.want {
			t.Errorf("promoteDataType(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAtSetRoundTrip(t *testing.T) {
	a := must(Zeros(Shape{2, 3}))

	if err := a.Set(5.5, 1, 2); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if v, _ := a.At(1, 2); v != 5.5 {
		t.Errorf("At(1,2) = %v, want 5.5", v)
	}
	if err := a.Set(7, -1, -3); err != nil {
		t.Fatalf("Set negative index error: %v", err)
	}
	if v, _ := a.At(1, 0); v != 7 {
		t.Errorf("At(1,0) = %v, want 7", v)
	}
}

func TestAtErrors(t *testing.T) {
	a := must(Zeros(Shape{2, 3}))

	_, err := a.At(0)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("wrong index count error = %v, want ErrDimensionMismatch", err)
	}

	_, err = a.At(0, 3)
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("out-of-range error = %v, want ErrIndexOutOfBounds", err)
	}
	if err == nil || !strings.Contains(err.Error(), "dimension 1") {
		t.Errorf("out-of-range error should name the dimension, got %v", err)
	}

	_, err = a.At(-3, 0)
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("negative out-of-range error = %v, want ErrIndexOutOfBounds", err)
	}
}

func TestSetErrors(t *testing.T) {
	ro := must(Zeros(Shape{2}, AsReadOnly()))
	err := ro.Set(1, 0)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("read-only Set error = %v, want ErrInvalidState", err)
	}
	if v, aerr := ro.At(0); aerr != nil || v != 0 {
		t.Errorf("read-only At = %v, %v, want 0", v, aerr)
	}

	a := must(Zeros(Shape{2}))
	if err := a.Set(math.NaN(), 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NaN Set error = %v, want ErrInvalidParameter", err)
	}
	if err := a.Set(math.Inf(-1), 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Inf Set error = %v, want ErrInvalidParameter", err)
	}
}

func TestIntegerStoreClamps(t *testing.T) {
	u := must(Zeros(Shape{3}, WithDType(Uint8)))
	_ = u.Set(300, 0)
	_ = u.Set(-5, 1)
	_ = u.Set(7.9, 2)
	assertValues(t, u, []float64{255, 0, 7}, "uint8 clamp")

	i := must(Zeros(Shape{2}, WithDType(Int8)))
	_ = i.Set(-200, 0)
	_ = i.Set(200, 1)
	assertValues(t, i, []float64{-128, 127}, "int8 clamp")
}

func TestItem(t *testing.T) {
	s := must(FromSlice([]float64{7}, Shape{}))
	if s.NDim() != 0 || s.Size() != 1 {
		t.Fatalf("scalar NDim/Size = %d/%d, want 0/1", s.NDim(), s.Size())
	}
	if v, err := s.Item(); err != nil || v != 7 {
		t.Errorf("Item = %v, %v, want 7", v, err)
	}

	a := must(Zeros(Shape{2}))
	_, err := a.Item()
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Item on size-2 array = %v, want ErrInvalidState", err)
	}
}

func TestValuesFollowsView(t *testing.T) {
	a := must(FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}))
	assertValues(t, a, []float64{1, 2, 3, 4, 5, 6}, "base order")

	tr := a.T()
	assertShape(t, Shape{3, 2}, tr.Shape(), "T")
	assertValues(t, tr, []float64{1, 4, 2, 5, 3, 6}, "transposed order")
}

func TestCopyDetaches(t *testing.T) {
	a := must(FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}))
	c := a.T().Copy()

	if c.SharesDataWith(a) {
		t.Error("Copy should not alias the source")
	}
	if !c.IsContiguous() {
		t.Error("Copy of a transposed view should be contiguous")
	}
	assertValues(t, c, []float64{1, 4, 2, 5, 3, 6}, "Copy preserves logical order")

	if err := c.Set(99, 0, 0); err != nil {
		t.Fatalf("Set on copy: %v", err)
	}
	if v, _ := a.At(0, 0); v != 1 {
		t.Errorf("source At(0,0) = %v after copy mutation, want 1", v)
	}

	ro := must(Zeros(Shape{2}, AsReadOnly()))
	if ro.Copy().ReadOnly() {
		t.Error("Copy of a read-only array should be writable")
	}
}

func TestSharesDataWithAndRefcount(t *testing.T) {
	a := must(FromSlice([]float64{1, 2, 3, 4}, Shape{4}))
	if !a.IsUnique() {
		t.Error("fresh array should be unique")
	}

	v := a.View()
	if a.IsUnique() || v.IsUnique() {
		t.Error("array with a live view should not be unique")
	}
	if !a.SharesDataWith(v) || !v.SharesDataWith(a) {
		t.Error("view should share data with its source")
	}
	if a.SharesDataWith(nil) {
		t.Error("SharesDataWith(nil) should be false")
	}

	v.Release()
	if !a.IsUnique() {
		t.Error("releasing the only view should make the source unique again")
	}

	if a.Copy().SharesDataWith(a) {
		t.Error("Copy should not share data")
	}
}

func TestReleaseTwiceSafe(_ *testing.T) {
	a, _ := Zeros(Shape{2, 2})
	v := a.View()

	// Releasing more often than referenced must not panic.
	v.Release()
	a.Release()
	a.Release()
}

func TestAsAccessorsZeroCopy(t *testing.T) {
	a := must(FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}))
	raw := a.AsFloat64()
	if len(raw) != 4 {
		t.Fatalf("AsFloat64 length = %d, want 4", len(raw))
	}
	raw[0] = 42
	if v, _ := a.At(0, 0); v != 42 {
		t.Errorf("At(0,0) = %v after raw write, want 42", v)
	}

	i := must(FromSlice([]int32{5, 6}, Shape{2}))
	i.AsInt32()[1] = 9
	assertValues(t, i, []float64{5, 9}, "AsInt32 zero-copy")

	h := must(FromSlice([]float16.Float16{float16.Fromfloat32(1)}, Shape{1}))
	bits := h.AsUint16()
	if bits[0] != 0x3C00 {
		t.Errorf("float16 1.0 bits = %#04x, want 0x3c00", bits[0])
	}
}

func TestAsAccessorPanics(t *testing.T) {
	a := must(FromSlice([]int32{1}, Shape{1}))

	defer func() {
		if r := recover(); r == nil {
			t.Error("AsFloat64 on an int32 array should panic")
		}
	}()
	a.AsFloat64()
}

func TestStringFormat(t *testing.T) {
	a := must(Zeros(Shape{2, 3}))
	if got := a.String(); got != "Array(shape=[2 3], dtype=float64)" {
		t.Errorf("String = %q", got)
	}
}
