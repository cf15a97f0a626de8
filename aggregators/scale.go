package aggregators

import "math"

// scaleFactor returns the inverse of the sampled fraction of a dataset, which turns a
// raw aggregate over the rows seen so far into an unbiased estimate for the whole
// dataset. It is NaN until at least one row has been seen.
func scaleFactor(totalRowCount int64, rowsSeen int64) float64 {
	if rowsSeen == 0 {
		return math.NaN()
	}
	return float64(totalRowCount) / float64(rowsSeen)
}
