// Package ndarray implements dense N-dimensional numeric arrays with
// row-major strided storage, zero-copy views, broadcasting and reductions.
package ndarray

import (
	"fmt"
	"math"

	"github.com/x448/float16"
)

// Element is a constraint over the Go types that can back array elements.
type Element interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported fixed-width element kinds. Float64 is the default.
const (
	Float64 DataType = iota
	Float32
	Float16
	Int32
	Int16
	Int8
	Uint32
	Uint16
	Uint8
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float64:
		return 8
	case Float32, Int32, Uint32:
		return 4
	case Float16, Int16, Uint16:
		return 2
	case Int8, Uint8:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Float16:
		return "float16"
	case Int32:
		return "int32"
	case Int16:
		return "int16"
	case Int8:
		return "int8"
	case Uint32:
		return "uint32"
	case Uint16:
		return "uint16"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating-point kind.
func (dt DataType) IsFloat() bool {
	return dt == Float64 || dt == Float32 || dt == Float16
}

// valid reports whether dt is one of the supported kinds.
func (dt DataType) valid() bool {
	return dt.Size() != 0
}

// inferDataType maps a concrete element type to its DataType tag.
func inferDataType[T Element](dummy T) (DataType, error) {
	switch any(dummy).(type) {
	case float64:
		return Float64, nil
	case float32:
		return Float32, nil
	case float16.Float16:
		return Float16, nil
	case int32:
		return Int32, nil
	case int16:
		return Int16, nil
	case int8:
		return Int8, nil
	case uint32:
		return Uint32, nil
	case uint16:
		return Uint16, nil
	case uint8:
		return Uint8, nil
	default:
		return Float64, fmt.Errorf("unsupported element type %T: %w", dummy, ErrInvalidParameter)
	}
}

// elementToFloat64 widens a concrete element to float64.
func elementToFloat64[T Element](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case float16.Float16:
		return float64(x.Float32())
	case int32:
		return float64(x)
	case int16:
		return float64(x)
	case int8:
		return float64(x)
	case uint32:
		return float64(x)
	case uint16:
		return float64(x)
	case uint8:
		return float64(x)
	default:
		return 0
	}
}

// promoteDataType picks the result dtype for a binary operation on two
// arrays. Equal kinds are kept; a float operand wins over an integer one,
// the wider float over the narrower; any other mix widens to Float64.
func promoteDataType(a, b DataType) DataType {
	if a == b {
		return a
	}
	switch {
	case a.IsFloat() && b.IsFloat():
		if b.Size() > a.Size() {
			return b
		}
		return a
	case a.IsFloat():
		return a
	case b.IsFloat():
		return b
	default:
		return Float64
	}
}

// castIntRange truncates v toward zero and clamps it into [lo, hi].
func castIntRange(v, lo, hi float64) float64 {
	t := math.Trunc(v)
	switch {
	case math.IsNaN(t):
		return 0
	case t < lo:
		return lo
	case t > hi:
		return hi
	default:
		return t
	}
}
