package ndarray

import (
	"fmt"
	"math"
)

// Element-wise kernels. Inputs are finite by the storage invariant; each
// kernel reports its own domain violations.

func addVals(x, y float64) (float64, error) { return x + y, nil }
func subVals(x, y float64) (float64, error) { return x - y, nil }
func mulVals(x, y float64) (float64, error) { return x * y, nil }

func divVals(x, y float64) (float64, error) {
	if y == 0 {
		return 0, errDivisionByZero
	}
	return x / y, nil
}

func modVals(x, y float64) (float64, error) {
	if y == 0 {
		return 0, errDivisionByZero
	}
	return math.Mod(x, y), nil
}

func powVals(x, y float64) (float64, error) {
	v := math.Pow(x, y)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNonFiniteValue
	}
	return v, nil
}

// Add returns a + b with broadcasting.
func (a *Array) Add(b *Array) (*Array, error) { return binaryOp(a, b, "add", addVals) }

// Sub returns a - b with broadcasting.
func (a *Array) Sub(b *Array) (*Array, error) { return binaryOp(a, b, "subtract", subVals) }

// Mul returns the element-wise product a * b with broadcasting.
func (a *Array) Mul(b *Array) (*Array, error) { return binaryOp(a, b, "multiply", mulVals) }

// Div returns a / b with broadcasting. Any zero divisor fails with
// ErrMathDomain naming the element.
func (a *Array) Div(b *Array) (*Array, error) { return binaryOp(a, b, "divide", divVals) }

// Pow returns a raised to b element-wise with broadcasting. Results that
// leave the finite range, such as a negative base with a fractional
// exponent, fail with ErrMathDomain.
func (a *Array) Pow(b *Array) (*Array, error) { return binaryOp(a, b, "power", powVals) }

// Mod returns the element-wise remainder of a / b with broadcasting,
// following truncated division: the result takes the dividend's sign.
func (a *Array) Mod(b *Array) (*Array, error) { return binaryOp(a, b, "mod", modVals) }

// AddScalar returns a + s element-wise.
func (a *Array) AddScalar(s float64) (*Array, error) { return scalarOp(a, s, "add", addVals) }

// SubScalar returns a - s element-wise.
func (a *Array) SubScalar(s float64) (*Array, error) { return scalarOp(a, s, "subtract", subVals) }

// MulScalar returns a * s element-wise.
func (a *Array) MulScalar(s float64) (*Array, error) { return scalarOp(a, s, "multiply", mulVals) }

// DivScalar returns a / s element-wise; s == 0 fails with ErrMathDomain.
func (a *Array) DivScalar(s float64) (*Array, error) { return scalarOp(a, s, "divide", divVals) }

// PowScalar returns a raised to s element-wise.
func (a *Array) PowScalar(s float64) (*Array, error) { return scalarOp(a, s, "power", powVals) }

// ModScalar returns the remainder of a / s element-wise.
func (a *Array) ModScalar(s float64) (*Array, error) { return scalarOp(a, s, "mod", modVals) }

// Neg returns the element-wise negation.
func (a *Array) Neg() (*Array, error) {
	return a.Apply("negate", func(v float64) (float64, error) { return -v, nil })
}

// Abs returns the element-wise absolute value.
func (a *Array) Abs() (*Array, error) {
	return a.Apply("abs", func(v float64) (float64, error) { return math.Abs(v), nil })
}

// Exp returns the element-wise exponential.
func (a *Array) Exp() (*Array, error) {
	return a.Apply("exp", func(v float64) (float64, error) {
		r := math.Exp(v)
		if math.IsInf(r, 0) {
			return 0, errNonFiniteValue
		}
		return r, nil
	})
}

// Log returns the element-wise natural logarithm. Non-positive elements
// fail with ErrMathDomain.
func (a *Array) Log() (*Array, error) {
	return a.Apply("log", func(v float64) (float64, error) {
		if v <= 0 {
			return 0, fmt.Errorf("non-positive value %v", v)
		}
		return math.Log(v), nil
	})
}

// Sqrt returns the element-wise square root. Negative elements fail with
// ErrMathDomain.
func (a *Array) Sqrt() (*Array, error) {
	return a.Apply("sqrt", func(v float64) (float64, error) {
		if v < 0 {
			return 0, fmt.Errorf("negative value %v", v)
		}
		return math.Sqrt(v), nil
	})
}
