package nn

import (
	"fmt"
	"math"

	"github.com/axon-ml/axon/internal/ndarray"
)

// Canonical Adam hyperparameters from Kingma & Ba (2014).
const (
	adamBeta1 = 0.9
	adamBeta2 = 0.999
	adamEps   = 1e-8
)

// Adam is an adaptive moment-estimation optimizer. It keeps
// exponential moving averages of each parameter's gradients (first
// moment) and squared gradients (second moment), corrects both for
// their zero initialization, and scales every update by the inverse
// root of the second moment:
//
//	m = beta1 · m + (1-beta1) · grad
//	v = beta2 · v + (1-beta2) · grad²
//	param = param - lr · (m / (1-beta1^t)) / (sqrt(v / (1-beta2^t)) + eps)
//
// Moment state and the bias-correction timestep accumulate per
// parameter array across Step calls.
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	m     map[*ndarray.Array][]float64
	v     map[*ndarray.Array][]float64
	t     map[*ndarray.Array]int
}

// NewAdam creates an optimizer with the canonical decay rates
// (beta1 0.9, beta2 0.999, eps 1e-8). The learning rate must be
// positive and finite.
func NewAdam(lr float64) (*Adam, error) {
	return NewAdamWith(lr, adamBeta1, adamBeta2, adamEps)
}

// NewAdamWith creates an optimizer with explicit decay rates. Both
// betas must lie in [0, 1) and eps must be positive and finite.
func NewAdamWith(lr, beta1, beta2, eps float64) (*Adam, error) {
	if math.IsNaN(lr) || math.IsInf(lr, 0) || lr <= 0 {
		return nil, fmt.Errorf("adam: learning rate %v out of range: %w", lr, ndarray.ErrInvalidParameter)
	}
	if math.IsNaN(beta1) || beta1 < 0 || beta1 >= 1 {
		return nil, fmt.Errorf("adam: beta1 %v outside [0, 1): %w", beta1, ndarray.ErrInvalidParameter)
	}
	if math.IsNaN(beta2) || beta2 < 0 || beta2 >= 1 {
		return nil, fmt.Errorf("adam: beta2 %v outside [0, 1): %w", beta2, ndarray.ErrInvalidParameter)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return nil, fmt.Errorf("adam: eps %v out of range: %w", eps, ndarray.ErrInvalidParameter)
	}
	return &Adam{
		lr:    lr,
		beta1: beta1,
		beta2: beta2,
		eps:   eps,
		m:     make(map[*ndarray.Array][]float64),
		v:     make(map[*ndarray.Array][]float64),
		t:     make(map[*ndarray.Array]int),
	}, nil
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 {
	return a.lr
}

// SetLR changes the learning rate, for schedules that decay it between
// steps.
func (a *Adam) SetLR(lr float64) error {
	if math.IsNaN(lr) || math.IsInf(lr, 0) || lr <= 0 {
		return fmt.Errorf("adam: learning rate %v out of range: %w", lr, ndarray.ErrInvalidParameter)
	}
	a.lr = lr
	return nil
}

// Step applies one Adam update to param in place using grad. The shapes
// must match exactly. Writes go through the array's Set path, so a
// read-only parameter is rejected before anything is modified; moment
// state and the timestep are only committed once the whole update
// lands.
func (a *Adam) Step(param, grad *ndarray.Array) error {
	if param == nil || grad == nil {
		return fmt.Errorf("adam step: nil operand: %w", ndarray.ErrInvalidParameter)
	}
	if !param.Shape().Equal(grad.Shape()) {
		return fmt.Errorf("adam step: parameter shape %v does not match gradient shape %v: %w",
			param.Shape(), grad.Shape(), ndarray.ErrDimensionMismatch)
	}

	gs := grad.Values()
	prevM := a.m[param]
	prevV := a.v[param]
	nextM := make([]float64, len(gs))
	nextV := make([]float64, len(gs))
	for i, g := range gs {
		var mc, vc float64
		if prevM != nil {
			mc = prevM[i]
			vc = prevV[i]
		}
		nextM[i] = a.beta1*mc + (1-a.beta1)*g
		nextV[i] = a.beta2*vc + (1-a.beta2)*g*g
	}

	t := a.t[param] + 1
	c1 := 1 - math.Pow(a.beta1, float64(t))
	c2 := 1 - math.Pow(a.beta2, float64(t))

	ps := param.Values()
	for flat, ix := range param.Shape().Coords() {
		mHat := nextM[flat] / c1
		vHat := nextV[flat] / c2
		if err := param.Set(ps[flat]-a.lr*mHat/(math.Sqrt(vHat)+a.eps), ix...); err != nil {
			return fmt.Errorf("adam step: %w", err)
		}
	}
	a.m[param] = nextM
	a.v[param] = nextV
	a.t[param] = t
	return nil
}

// Reset drops all accumulated moment state and timesteps.
func (a *Adam) Reset() {
	clear(a.m)
	clear(a.v)
	clear(a.t)
}
