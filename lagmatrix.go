package tsutils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LagMatrix builds an N x K matrix of shifted copies of x, one column per
// requested shift, in request order. A positive lag shifts values backward
// in time, so row t of that column holds x[t-lag]; a negative lag is a
// lead, with row t holding x[t+|lag|]; zero is an unshifted copy. Rows
// where the shift has no source sample hold NaN.
//
// Duplicate lag values are permitted and produce identical columns. An
// empty lag set yields an empty matrix (gonum forbids zero-sized Dense, so
// the zero-value &mat.Dense{} is returned).
func LagMatrix(x []float64, lags []int) (*mat.Dense, error) {
	if len(x) == 0 {
		return nil, ErrNoData
	}
	if len(lags) == 0 {
		return &mat.Dense{}, nil
	}

	n := len(x)

	// Pad by the largest lag and lead so every shifted placement lands
	// inside the buffer without per-element bounds checks.
	maxLag, maxLead := 0, 0
	for _, lag := range lags {
		if lag > maxLag {
			maxLag = lag
		}
		if -lag > maxLead {
			maxLead = -lag
		}
	}

	out := mat.NewDense(n, len(lags), nil)
	buf := make([]float64, n+maxLag+maxLead)
	for k, lag := range lags {
		for i := range buf {
			buf[i] = math.NaN()
		}
		copy(buf[maxLead+lag:], x)
		// Keep only the central N rows; the padding existed purely to make
		// the shifted placement well-defined.
		for t := 0; t < n; t++ {
			out.Set(t, k, buf[maxLead+t])
		}
	}

	return out, nil
}
