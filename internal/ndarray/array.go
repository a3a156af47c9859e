package ndarray

import (
	"fmt"
	"math"
	"slices"

	"github.com/x448/float16"
)

// Array is a dense N-dimensional numeric array. It couples reference-counted
// flat storage with the metadata that gives it N-dimensional meaning: a
// shape, row-major element strides, a base offset and a dtype tag. Several
// arrays may alias one buffer through different metadata; writes through any
// alias are visible to all of them.
//
// Shape, strides, offset and dtype are fixed at construction. Buffer
// contents are mutable unless the array is marked read-only.
type Array struct {
	buf      *buffer
	shape    Shape
	strides  []int
	offset   int
	dtype    DataType
	readonly bool
}

// newDense allocates a zero-filled canonical array. Callers wrap returned
// errors with their operation name.
func newDense(shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if !dtype.valid() {
		return nil, fmt.Errorf("unknown dtype tag %d: %w", int(dtype), ErrInvalidParameter)
	}

	return &Array{
		buf:     newBuffer(shape.NumElements() * dtype.Size()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		dtype:   dtype,
	}, nil
}

// view creates an alias onto the same buffer with new metadata.
// The alias inherits the read-only flag.
func (a *Array) view(shape Shape, strides []int, offset int) *Array {
	a.buf.addRef()
	return &Array{
		buf:      a.buf,
		shape:    shape,
		strides:  strides,
		offset:   offset,
		dtype:    a.dtype,
		readonly: a.readonly,
	}
}

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns a copy of the array's element strides.
func (a *Array) Strides() []int {
	return slices.Clone(a.strides)
}

// Offset returns the element offset of the array's first logical element
// within its buffer. Zero for freshly allocated arrays; views may start
// deeper in shared storage.
func (a *Array) Offset() int {
	return a.offset
}

// DType returns the array's element kind.
func (a *Array) DType() DataType {
	return a.dtype
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return a.shape.NumElements()
}

// ByteSize returns the logical storage size in bytes.
func (a *Array) ByteSize() int {
	return a.Size() * a.dtype.Size()
}

// ReadOnly reports whether writes through this array are rejected.
func (a *Array) ReadOnly() bool {
	return a.readonly
}

// IsContiguous reports whether the logical element order coincides with
// the physical storage order, i.e. the strides are the freshly computed
// row-major strides for the shape.
func (a *Array) IsContiguous() bool {
	return a.isCanonical()
}

func (a *Array) isCanonical() bool {
	return slices.Equal(a.strides, a.shape.ComputeStrides())
}

// SharesDataWith reports whether two arrays alias the same buffer.
func (a *Array) SharesDataWith(other *Array) bool {
	return other != nil && a.buf == other.buf
}

// IsUnique reports whether this array's buffer has exactly one referent.
func (a *Array) IsUnique() bool {
	return a.buf.isUnique()
}

// Release drops this array's reference to its buffer. The storage is
// reclaimed once the last referent releases it; the array must not be
// used afterwards.
func (a *Array) Release() {
	a.buf.release()
}

// String returns a compact description of the array's metadata.
func (a *Array) String() string {
	return fmt.Sprintf("Array(shape=%v, dtype=%s)", a.shape, a.dtype)
}

// physicalIndex resolves a full multi-index to a physical element offset.
// Negative indices count from the end of their dimension.
func (a *Array) physicalIndex(op string, indices []int) (int, error) {
	if len(indices) != len(a.shape) {
		return 0, fmt.Errorf("%s: got %d indices for %d dimensions: %w",
			op, len(indices), len(a.shape), ErrDimensionMismatch)
	}
	phys := a.offset
	for d, ix := range indices {
		dim := a.shape[d]
		if ix < 0 {
			ix += dim
		}
		if ix < 0 || ix >= dim {
			return 0, fmt.Errorf("%s: index %d out of range for dimension %d (size %d): %w",
				op, indices[d], d, dim, ErrIndexOutOfBounds)
		}
		phys += ix * a.strides[d]
	}
	return phys, nil
}

// At returns the element at the given multi-index, widened to float64.
// Negative indices resolve relative to their dimension size.
func (a *Array) At(indices ...int) (float64, error) {
	phys, err := a.physicalIndex("at", indices)
	if err != nil {
		return 0, err
	}
	return a.loadAt(phys), nil
}

// Set stores v at the given multi-index, cast to the array's dtype.
// Integer dtypes truncate toward zero and clamp to their range.
func (a *Array) Set(v float64, indices ...int) error {
	if a.readonly {
		return fmt.Errorf("set: array is read-only: %w", ErrInvalidState)
	}
	if err := checkFinite("set", v); err != nil {
		return err
	}
	phys, err := a.physicalIndex("set", indices)
	if err != nil {
		return err
	}
	a.storeAt(phys, v)
	return nil
}

// Item returns the sole element of a size-1 array.
func (a *Array) Item() (float64, error) {
	if a.Size() != 1 {
		return 0, fmt.Errorf("item: array holds %d elements, want exactly 1: %w",
			a.Size(), ErrInvalidState)
	}
	return a.loadAt(a.offset), nil
}

// Values gathers the array's elements into a fresh []float64 in logical
// row-major order, following the view's strides.
func (a *Array) Values() []float64 {
	out := make([]float64, a.Size())
	if a.isCanonical() {
		for i := range out {
			out[i] = a.loadAt(a.offset + i)
		}
		return out
	}
	for flat, ix := range a.shape.Coords() {
		out[flat] = a.loadAt(a.offset + offsetOf(ix, a.strides))
	}
	return out
}

// Copy materializes the logical content into a fresh canonical array.
// The copy owns its buffer and is always writable.
func (a *Array) Copy() *Array {
	out := &Array{
		buf:     newBuffer(a.Size() * a.dtype.Size()),
		shape:   a.shape.Clone(),
		strides: a.shape.ComputeStrides(),
		dtype:   a.dtype,
	}
	if a.isCanonical() {
		start := a.offset * a.dtype.Size()
		copy(out.buf.data, a.buf.data[start:start+out.ByteSize()])
		return out
	}
	for flat, ix := range a.shape.Coords() {
		out.storeAt(flat, a.loadAt(a.offset+offsetOf(ix, a.strides)))
	}
	return out
}

// loadAt reads the element at a physical offset, widened to float64.
func (a *Array) loadAt(phys int) float64 {
	switch a.dtype {
	case Float64:
		return a.buf.f64()[phys]
	case Float32:
		return float64(a.buf.f32()[phys])
	case Float16:
		return float64(float16.Frombits(a.buf.u16()[phys]).Float32())
	case Int32:
		return float64(a.buf.i32()[phys])
	case Int16:
		return float64(a.buf.i16()[phys])
	case Int8:
		return float64(a.buf.i8()[phys])
	case Uint32:
		return float64(a.buf.u32()[phys])
	case Uint16:
		return float64(a.buf.u16()[phys])
	case Uint8:
		return float64(a.buf.u8()[phys])
	default:
		panic(fmt.Sprintf("load: unknown dtype %d", int(a.dtype)))
	}
}

// storeAt writes v at a physical offset, cast to the array's dtype.
func (a *Array) storeAt(phys int, v float64) {
	switch a.dtype {
	case Float64:
		a.buf.f64()[phys] = v
	case Float32:
		a.buf.f32()[phys] = float32(v)
	case Float16:
		a.buf.u16()[phys] = float16.Fromfloat32(float32(v)).Bits()
	case Int32:
		a.buf.i32()[phys] = int32(castIntRange(v, math.MinInt32, math.MaxInt32))
	case Int16:
		a.buf.i16()[phys] = int16(castIntRange(v, math.MinInt16, math.MaxInt16))
	case Int8:
		a.buf.i8()[phys] = int8(castIntRange(v, math.MinInt8, math.MaxInt8))
	case Uint32:
		a.buf.u32()[phys] = uint32(castIntRange(v, 0, math.MaxUint32))
	case Uint16:
		a.buf.u16()[phys] = uint16(castIntRange(v, 0, math.MaxUint16))
	case Uint8:
		a.buf.u8()[phys] = uint8(castIntRange(v, 0, math.MaxUint8))
	default:
		panic(fmt.Sprintf("store: unknown dtype %d", int(a.dtype)))
	}
}

// checkFinite rejects NaN and infinities before they reach storage.
func checkFinite(op string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: non-finite value %v: %w", op, v, ErrInvalidParameter)
	}
	return nil
}

// AsFloat64 returns the raw storage as a float64 slice in physical order.
// Panics if the dtype does not match. Views share this storage; consult
// IsContiguous before treating it as logical order.
func (a *Array) AsFloat64() []float64 {
	a.mustDType(Float64)
	return a.buf.f64()
}

// AsFloat32 returns the raw storage as a float32 slice in physical order.
func (a *Array) AsFloat32() []float32 {
	a.mustDType(Float32)
	return a.buf.f32()
}

// AsInt32 returns the raw storage as an int32 slice in physical order.
func (a *Array) AsInt32() []int32 {
	a.mustDType(Int32)
	return a.buf.i32()
}

// AsInt16 returns the raw storage as an int16 slice in physical order.
func (a *Array) AsInt16() []int16 {
	a.mustDType(Int16)
	return a.buf.i16()
}

// AsInt8 returns the raw storage as an int8 slice in physical order.
func (a *Array) AsInt8() []int8 {
	a.mustDType(Int8)
	return a.buf.i8()
}

// AsUint32 returns the raw storage as a uint32 slice in physical order.
func (a *Array) AsUint32() []uint32 {
	a.mustDType(Uint32)
	return a.buf.u32()
}

// AsUint16 returns the raw storage as a uint16 slice in physical order.
// Float16 arrays expose their IEEE 754 binary16 bit patterns this way.
func (a *Array) AsUint16() []uint16 {
	if a.dtype != Uint16 && a.dtype != Float16 {
		panic(fmt.Sprintf("type mismatch: array is %s, not uint16-backed", a.dtype))
	}
	return a.buf.u16()
}

// AsUint8 returns the raw storage as a uint8 slice in physical order.
func (a *Array) AsUint8() []uint8 {
	a.mustDType(Uint8)
	return a.buf.u8()
}

func (a *Array) mustDType(want DataType) {
	if a.dtype != want {
		panic(fmt.Sprintf("type mismatch: array is %s, not %s", a.dtype, want))
	}
}
