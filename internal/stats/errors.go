package stats

import "errors"

// Sentinel errors for the statistics surface; match with errors.Is.
var (
	// ErrNoData reports an input with too few observations for the
	// requested statistic.
	ErrNoData = errors.New("stats: no data")

	// ErrLengthMismatch reports paired inputs of different lengths.
	ErrLengthMismatch = errors.New("stats: length mismatch")

	// ErrBadParam reports an out-of-range parameter, such as a negative
	// ddof or a percentile outside [0, 100].
	ErrBadParam = errors.New("stats: bad parameter")
)
