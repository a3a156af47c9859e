package ndarray

import (
	"fmt"
	"math"
	"reflect"
)

// FromNested creates an array from nested Go slices, e.g. [][]float64 or
// []any holding further slices. The shape is derived from the nesting
// depth and the first element at each level; every sibling must match it,
// otherwise the input is ragged and rejected. Leaves are widened to
// float64 and must be finite. The dtype is inferred from the leaf type
// (integers map to their fixed-width kind, untyped int to Int32) unless
// WithDType overrides it.
func FromNested(nested any, opts ...Option) (*Array, error) {
	cfg := resolveOptions(opts)
	shape, flat, inferred, err := flattenNested(nested)
	if err != nil {
		return nil, fmt.Errorf("from nested: %w", err)
	}
	dt := cfg.dtype
	if !cfg.dtypeSet {
		dt = inferred
	}

	a, err := newDense(shape, dt)
	if err != nil {
		return nil, fmt.Errorf("from nested: %w", err)
	}
	for i, v := range flat {
		a.storeAt(i, v)
	}
	a.readonly = cfg.readonly
	return a, nil
}

// nestedFrame tracks one partially consumed list during iterative
// traversal, replacing the call stack of a recursive flatten.
type nestedFrame struct {
	list reflect.Value
	next int
}

// flattenNested derives the shape of a nested structure and flattens its
// leaves into row-major order using an explicit frame stack.
func flattenNested(nested any) (Shape, []float64, DataType, error) {
	if nested == nil {
		return nil, nil, Float64, fmt.Errorf("input is nil: %w", ErrInvalidParameter)
	}

	// First descent: the first child at each level fixes the shape.
	shape := Shape{}
	probe := indirect(reflect.ValueOf(nested))
	for isList(probe) {
		shape = append(shape, probe.Len())
		if probe.Len() == 0 {
			break
		}
		probe = indirect(probe.Index(0))
	}
	dt := nestedLeafType(probe)

	if len(shape) == 0 {
		v, err := leafValue(probe)
		if err != nil {
			return nil, nil, dt, err
		}
		if err := finiteLeaf(v, 0); err != nil {
			return nil, nil, dt, err
		}
		return shape, []float64{v}, dt, nil
	}

	flat := make([]float64, 0, shape.NumElements())
	stack := make([]nestedFrame, 0, len(shape))
	stack = append(stack, nestedFrame{list: indirect(reflect.ValueOf(nested))})

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		depth := len(stack) - 1

		if f.next == 0 && f.list.Len() != shape[depth] {
			return nil, nil, dt, fmt.Errorf("ragged input: level %d has length %d, want %d: %w",
				depth, f.list.Len(), shape[depth], ErrDimensionMismatch)
		}
		if f.next == f.list.Len() {
			stack = stack[:len(stack)-1]
			continue
		}

		child := indirect(f.list.Index(f.next))
		f.next++

		if depth+1 == len(shape) {
			if isList(child) {
				return nil, nil, dt, fmt.Errorf("ragged input: nesting at level %d exceeds depth %d: %w",
					depth+1, len(shape), ErrDimensionMismatch)
			}
			v, err := leafValue(child)
			if err != nil {
				return nil, nil, dt, err
			}
			if err := finiteLeaf(v, len(flat)); err != nil {
				return nil, nil, dt, err
			}
			flat = append(flat, v)
			continue
		}

		if !isList(child) {
			return nil, nil, dt, fmt.Errorf("ragged input: level %d holds a scalar, want depth %d: %w",
				depth+1, len(shape), ErrDimensionMismatch)
		}
		stack = append(stack, nestedFrame{list: child})
	}

	return shape, flat, dt, nil
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func isList(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func leafValue(v reflect.Value) (float64, error) {
	switch v.Kind() {
	case reflect.Float64, reflect.Float32:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	default:
		return 0, fmt.Errorf("unsupported leaf %s: %w", v.Kind(), ErrInvalidParameter)
	}
}

func finiteLeaf(v float64, flat int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("non-finite value %v at flat index %d: %w", v, flat, ErrInvalidParameter)
	}
	return nil
}

func nestedLeafType(v reflect.Value) DataType {
	switch v.Kind() {
	case reflect.Float64:
		return Float64
	case reflect.Float32:
		return Float32
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int, reflect.Int32, reflect.Int64:
		return Int32
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		return Uint32
	default:
		return Float64
	}
}
