package nn

import (
	"fmt"
	"math"

	"github.com/axon-ml/axon/internal/ndarray"
)

// SGD is a stochastic gradient-descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr · grad
//
// Update rule with momentum:
//
//	velocity = momentum · velocity + grad
//	param    = param - lr · velocity
//
// Velocity state accumulates per parameter array across Step calls, so
// one SGD value can drive any number of parameters.
type SGD struct {
	lr       float64
	momentum float64
	velocity map[*ndarray.Array][]float64
}

// NewSGD creates an optimizer with the given learning rate and momentum
// factor. The learning rate must be positive and finite; momentum must
// lie in [0, 1), with 0 disabling it.
func NewSGD(lr, momentum float64) (*SGD, error) {
	if math.IsNaN(lr) || math.IsInf(lr, 0) || lr <= 0 {
		return nil, fmt.Errorf("sgd: learning rate %v out of range: %w", lr, ndarray.ErrInvalidParameter)
	}
	if math.IsNaN(momentum) || momentum < 0 || momentum >= 1 {
		return nil, fmt.Errorf("sgd: momentum %v outside [0, 1): %w", momentum, ndarray.ErrInvalidParameter)
	}
	return &SGD{
		lr:       lr,
		momentum: momentum,
		velocity: make(map[*ndarray.Array][]float64),
	}, nil
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR changes the learning rate, for schedules that decay it between
// steps.
func (s *SGD) SetLR(lr float64) error {
	if math.IsNaN(lr) || math.IsInf(lr, 0) || lr <= 0 {
		return fmt.Errorf("sgd: learning rate %v out of range: %w", lr, ndarray.ErrInvalidParameter)
	}
	s.lr = lr
	return nil
}

// Step applies one descent update to param in place using grad. The
// shapes must match exactly. Writes go through the array's Set path, so
// a read-only parameter is rejected before anything is modified, and a
// view updates exactly the elements it covers. Momentum state is only
// committed once the whole update lands.
func (s *SGD) Step(param, grad *ndarray.Array) error {
	if param == nil || grad == nil {
		return fmt.Errorf("sgd step: nil operand: %w", ndarray.ErrInvalidParameter)
	}
	if !param.Shape().Equal(grad.Shape()) {
		return fmt.Errorf("sgd step: parameter shape %v does not match gradient shape %v: %w",
			param.Shape(), grad.Shape(), ndarray.ErrDimensionMismatch)
	}

	gs := grad.Values()
	step := gs
	var next []float64
	if s.momentum > 0 {
		prev := s.velocity[param]
		next = make([]float64, len(gs))
		for i, g := range gs {
			var carry float64
			if prev != nil {
				carry = prev[i]
			}
			next[i] = s.momentum*carry + g
		}
		step = next
	}

	ps := param.Values()
	for flat, ix := range param.Shape().Coords() {
		if err := param.Set(ps[flat]-s.lr*step[flat], ix...); err != nil {
			return fmt.Errorf("sgd step: %w", err)
		}
	}
	if next != nil {
		s.velocity[param] = next
	}
	return nil
}

// Reset drops all accumulated momentum state.
func (s *SGD) Reset() {
	clear(s.velocity)
}
