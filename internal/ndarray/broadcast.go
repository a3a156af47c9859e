package ndarray

import "fmt"

// binaryFunc combines two elements. A non-nil error marks a domain
// violation; the dispatcher wraps it with the operation name and the
// failing result element's flat index.
type binaryFunc func(x, y float64) (float64, error)

// broadcastStrides maps an operand's strides onto a broadcast result
// shape: dimensions the operand lacks, and dimensions of size 1, get
// stride 0 so the same element is reread as the result index advances.
func broadcastStrides(shape Shape, strides []int, out Shape) []int {
	bs := make([]int, len(out))
	pad := len(out) - len(shape)
	for i := pad; i < len(out); i++ {
		if shape[i-pad] != 1 {
			bs[i] = strides[i-pad]
		}
	}
	return bs
}

// binaryOp applies f pairwise over two broadcast-aligned arrays into a
// freshly allocated result. Equal canonical float64 operands take a flat
// fast path; everything else funnels through one strided loop driven by
// the result coordinates. Shape errors surface before the result buffer
// is allocated, and operands are never mutated.
func binaryOp(a, b *Array, op string, f binaryFunc) (*Array, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: nil operand: %w", op, ErrInvalidParameter)
	}
	outShape, _, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, err := newDense(outShape, promoteDataType(a.dtype, b.dtype))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if a.shape.Equal(b.shape) && a.isCanonical() && b.isCanonical() &&
		a.dtype == Float64 && b.dtype == Float64 {
		xs := a.buf.f64()[a.offset : a.offset+a.Size()]
		ys := b.buf.f64()[b.offset : b.offset+b.Size()]
		zs := out.buf.f64()
		for i := range zs {
			v, ferr := f(xs[i], ys[i])
			if ferr != nil {
				return nil, opError(op, i, ferr)
			}
			zs[i] = v
		}
		return out, nil
	}

	sa := broadcastStrides(a.shape, a.strides, outShape)
	sb := broadcastStrides(b.shape, b.strides, outShape)
	for flat, ix := range outShape.Coords() {
		x := a.loadAt(a.offset + offsetOf(ix, sa))
		y := b.loadAt(b.offset + offsetOf(ix, sb))
		v, ferr := f(x, y)
		if ferr != nil {
			return nil, opError(op, flat, ferr)
		}
		out.storeAt(flat, v)
	}
	return out, nil
}

// scalarOp applies f(x, s) over the array's logical elements into a fresh
// result with the array's shape and dtype.
func scalarOp(a *Array, s float64, op string, f binaryFunc) (*Array, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: nil operand: %w", op, ErrInvalidParameter)
	}
	if err := checkFinite(op, s); err != nil {
		return nil, err
	}
	out, err := newDense(a.shape, a.dtype)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if a.isCanonical() && a.dtype == Float64 {
		xs := a.buf.f64()[a.offset : a.offset+a.Size()]
		zs := out.buf.f64()
		for i := range zs {
			v, ferr := f(xs[i], s)
			if ferr != nil {
				return nil, opError(op, i, ferr)
			}
			zs[i] = v
		}
		return out, nil
	}

	for flat, ix := range a.shape.Coords() {
		v, ferr := f(a.loadAt(a.offset+offsetOf(ix, a.strides)), s)
		if ferr != nil {
			return nil, opError(op, flat, ferr)
		}
		out.storeAt(flat, v)
	}
	return out, nil
}

// Apply maps a unary kernel over every element into a fresh array with
// the same shape and dtype. Kernel errors are reported like binary
// operation domain errors, tagged with op and the flat element index.
func (a *Array) Apply(op string, f func(float64) (float64, error)) (*Array, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: nil operand: %w", op, ErrInvalidParameter)
	}
	out, err := newDense(a.shape, a.dtype)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if a.isCanonical() && a.dtype == Float64 {
		xs := a.buf.f64()[a.offset : a.offset+a.Size()]
		zs := out.buf.f64()
		for i := range zs {
			v, ferr := f(xs[i])
			if ferr != nil {
				return nil, opError(op, i, ferr)
			}
			zs[i] = v
		}
		return out, nil
	}

	for flat, ix := range a.shape.Coords() {
		v, ferr := f(a.loadAt(a.offset + offsetOf(ix, a.strides)))
		if ferr != nil {
			return nil, opError(op, flat, ferr)
		}
		out.storeAt(flat, v)
	}
	return out, nil
}

// opError folds a kernel-level cause into ErrMathDomain with the
// operation name and the failing element's flat index.
func opError(op string, flat int, cause error) error {
	return fmt.Errorf("%s: %s at flat index %d: %w", op, cause, flat, ErrMathDomain)
}
