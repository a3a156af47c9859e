package stats

import (
	"fmt"
	"math"
	"slices"
)

// Summary holds the descriptive statistics computed by Describe.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}

// String renders the summary as a single scannable line.
func (s Summary) String() string {
	return fmt.Sprintf("count %d  mean %.6g  std %.6g  min %.6g  p25 %.6g  median %.6g  p75 %.6g  max %.6g",
		s.Count, s.Mean, s.Std, s.Min, s.P25, s.Median, s.P75, s.Max)
}

// Describe computes the count, mean, sample standard deviation, extrema
// and quartiles of xs in one pass over a sorted copy. Std is 0 for a
// single observation, where the sample deviation is undefined.
func Describe(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, fmt.Errorf("describe: %w", ErrNoData)
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	n := len(sorted)
	s := Summary{
		Count:  n,
		Mean:   Sum(xs) / float64(n),
		Min:    sorted[0],
		Max:    sorted[n-1],
		P25:    quantileSorted(sorted, 25),
		Median: quantileSorted(sorted, 50),
		P75:    quantileSorted(sorted, 75),
	}
	if n > 1 {
		var ss float64
		for _, x := range xs {
			d := x - s.Mean
			ss += d * d
		}
		s.Std = math.Sqrt(ss / float64(n-1))
	}
	return s, nil
}
