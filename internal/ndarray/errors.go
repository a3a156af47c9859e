package ndarray

import "errors"

// Sentinel errors returned by the array engine. Callers match them with
// errors.Is; every returned error wraps exactly one of these kinds.
var (
	// ErrDimensionMismatch reports incompatible shapes or sizes: a data
	// buffer that does not fill a shape, ragged nested input, shapes that
	// cannot broadcast, or more index specs than dimensions.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrIndexOutOfBounds reports an index outside a dimension's valid
	// range after negative-index resolution.
	ErrIndexOutOfBounds = errors.New("ndarray: index out of bounds")

	// ErrInvalidParameter reports a malformed argument: a non-finite
	// value, a zero step, an axis outside the rank, a bad ddof, or an
	// unknown dtype tag.
	ErrInvalidParameter = errors.New("ndarray: invalid parameter")

	// ErrInvalidState reports an operation the array's state forbids,
	// such as writing through a read-only array.
	ErrInvalidState = errors.New("ndarray: invalid state")

	// ErrMathDomain reports a domain violation while applying an
	// element-wise kernel, such as division by zero. The wrapping error
	// names the operation and the flat index of the failing element.
	ErrMathDomain = errors.New("ndarray: mathematical domain error")
)

// Kernel-level causes folded into ErrMathDomain by the dispatchers.
var (
	errDivisionByZero = errors.New("division by zero")
	errNonFiniteValue = errors.New("non-finite result")
)
