// Package tsutils provides standalone numerical utilities for time-series
// modelling workflows.
//
// Usage:
//
//	import "github.com/cran/tsutils"
//
//	path, err := tsutils.LambdaSequence(x, y, nil)
//	lags, err := tsutils.LagMatrix(series, []int{0, 1, 2})
//
// The two components are independent and stateless:
//
//   - LambdaMax / LambdaSequence compute the penalty grid for an elastic-net
//     regularization path: the smallest penalty that zeroes every
//     coefficient, the null-model MSE, and a logarithmically descending
//     sequence of candidate penalties between lambdaMax and lambdaMin.
//   - LagMatrix builds a matrix of lead/lag shifted copies of a vector,
//     padding out-of-range positions with NaN, for use as predictor columns
//     in time-series regression.
//
// Neither function fits a model. The lambda grid is meant to be consumed by
// an external elastic-net or LASSO solver; all computation here is local,
// synchronous and free of shared state, so both functions are safe to call
// from concurrent goroutines on independent inputs.
package tsutils
