package nn

import (
	"fmt"
	"math"

	"github.com/axon-ml/axon/internal/ndarray"
)

// bceEps keeps predicted probabilities away from the log singularities
// at exactly 0 and 1.
const bceEps = 1e-12

// MSE returns the mean squared error between predictions and targets,
// mean((pred - target)²). The shapes must match exactly.
func MSE(pred, target *ndarray.Array) (float64, error) {
	ps, ts, err := pairwise("mse", pred, target)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i, p := range ps {
		d := p - ts[i]
		sum += d * d
	}
	return sum / float64(len(ps)), nil
}

// MAE returns the mean absolute error between predictions and targets,
// mean(|pred - target|). The shapes must match exactly.
func MAE(pred, target *ndarray.Array) (float64, error) {
	ps, ts, err := pairwise("mae", pred, target)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i, p := range ps {
		sum += math.Abs(p - ts[i])
	}
	return sum / float64(len(ps)), nil
}

// BinaryCrossEntropy returns -mean(t·log(p) + (1-t)·log(1-p)) over a
// prediction/target pair. Predictions are probabilities and targets may
// be soft labels; both must lie in [0, 1]. Predictions are clamped to
// [bceEps, 1-bceEps] before taking logs, so exact 0 and 1 stay finite.
func BinaryCrossEntropy(pred, target *ndarray.Array) (float64, error) {
	ps, ts, err := pairwise("bce", pred, target)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i, p := range ps {
		t := ts[i]
		if !(p >= 0 && p <= 1) {
			return 0, fmt.Errorf("bce: prediction %v at index %d outside [0, 1]: %w",
				p, i, ndarray.ErrInvalidParameter)
		}
		if !(t >= 0 && t <= 1) {
			return 0, fmt.Errorf("bce: target %v at index %d outside [0, 1]: %w",
				t, i, ndarray.ErrInvalidParameter)
		}
		p = math.Min(math.Max(p, bceEps), 1-bceEps)
		sum += t*math.Log(p) + (1-t)*math.Log(1-p)
	}
	return -sum / float64(len(ps)), nil
}
