// Package nn provides neural-network building blocks over ndarray
// values: element-wise activations, scalar loss functions, and the SGD
// and Adam optimizers. There is no automatic differentiation; callers
// supply their own gradients.
//
// Everything reports failures through the ndarray sentinels, matched
// with errors.Is.
package nn

import (
	"fmt"

	"github.com/axon-ml/axon/internal/ndarray"
)

// pairwise validates a prediction/target pair for the loss functions
// and returns both element sequences in logical order. The shapes must
// match exactly; losses never broadcast.
func pairwise(op string, pred, target *ndarray.Array) ([]float64, []float64, error) {
	if pred == nil || target == nil {
		return nil, nil, fmt.Errorf("%s: nil operand: %w", op, ndarray.ErrInvalidParameter)
	}
	if !pred.Shape().Equal(target.Shape()) {
		return nil, nil, fmt.Errorf("%s: prediction shape %v does not match target shape %v: %w",
			op, pred.Shape(), target.Shape(), ndarray.ErrDimensionMismatch)
	}
	if pred.Size() == 0 {
		return nil, nil, fmt.Errorf("%s: no elements: %w", op, ndarray.ErrInvalidParameter)
	}
	return pred.Values(), target.Values(), nil
}
