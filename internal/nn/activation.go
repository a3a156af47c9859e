package nn

import (
	"fmt"
	"math"

	"github.com/axon-ml/axon/internal/ndarray"
)

// ReLU applies the rectified linear unit f(x) = max(0, x) element-wise
// into a fresh array.
func ReLU(a *ndarray.Array) (*ndarray.Array, error) {
	return a.Apply("relu", func(v float64) (float64, error) {
		return math.Max(0, v), nil
	})
}

// LeakyReLU applies f(x) = x for x >= 0 and alpha·x otherwise. The
// usual alpha is a small positive slope such as 0.01.
func LeakyReLU(a *ndarray.Array, alpha float64) (*ndarray.Array, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("leaky relu: alpha %v is not finite: %w", alpha, ndarray.ErrInvalidParameter)
	}
	return a.Apply("leaky relu", func(v float64) (float64, error) {
		if v >= 0 {
			return v, nil
		}
		return alpha * v, nil
	})
}

// Sigmoid applies the logistic function σ(x) = 1 / (1 + exp(-x))
// element-wise. Outputs lie in (0, 1).
func Sigmoid(a *ndarray.Array) (*ndarray.Array, error) {
	return a.Apply("sigmoid", func(v float64) (float64, error) {
		// Branch on sign so exp never sees a large positive argument.
		if v >= 0 {
			return 1 / (1 + math.Exp(-v)), nil
		}
		e := math.Exp(v)
		return e / (1 + e), nil
	})
}

// Tanh applies the hyperbolic tangent element-wise. Outputs lie in
// (-1, 1) and are zero-centered.
func Tanh(a *ndarray.Array) (*ndarray.Array, error) {
	return a.Apply("tanh", func(v float64) (float64, error) {
		return math.Tanh(v), nil
	})
}

// Softmax normalizes along one axis so each slice sums to 1. The axis
// may be negative. The maximum is subtracted before exponentiating, so
// the exponentials stay in (0, 1] and the sums never overflow.
func Softmax(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	if a == nil {
		return nil, fmt.Errorf("softmax: nil operand: %w", ndarray.ErrInvalidParameter)
	}
	ax := axis
	if ax < 0 {
		ax += a.NDim()
	}
	if ax < 0 || ax >= a.NDim() {
		return nil, fmt.Errorf("softmax: axis %d out of range for %d dimensions: %w",
			axis, a.NDim(), ndarray.ErrInvalidParameter)
	}
	if a.NDim() == 1 {
		return softmaxFlat(a)
	}

	maxes, err := a.MaxAxis(ax)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	keep, err := maxes.Unsqueeze(ax)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	shifted, err := a.Sub(keep)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	exps, err := shifted.Exp()
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	sums, err := exps.SumAxis(ax)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	keepSums, err := sums.Unsqueeze(ax)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	out, err := exps.Div(keepSums)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	return out, nil
}

// softmaxFlat handles 1-D input, where the folded reduction shape would
// not line up for broadcasting and scalar arithmetic is enough.
func softmaxFlat(a *ndarray.Array) (*ndarray.Array, error) {
	m, err := a.Max()
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	shifted, err := a.SubScalar(m)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	exps, err := shifted.Exp()
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	total, err := exps.Sum()
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	out, err := exps.DivScalar(total)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	return out, nil
}
