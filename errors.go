package tsutils

import "errors"

// Validation errors returned before any computation starts. Numeric
// degeneracies (zero-variance predictor columns) are handled in place and
// never surface as errors.
var (
	// ErrNoData indicates a nil or empty design matrix or response vector.
	ErrNoData = errors.New("tsutils: design matrix and response must be non-empty")

	// ErrDimensionMismatch indicates x, y and weights disagree on the number
	// of observations.
	ErrDimensionMismatch = errors.New("tsutils: dimension mismatch")

	// ErrTooFewObservations indicates fewer than two observations.
	ErrTooFewObservations = errors.New("tsutils: need at least 2 observations")

	// ErrInvalidAlpha indicates an elastic-net mixing parameter <= 0. The
	// lambdaMax formula divides by alpha, so zero is a domain error rather
	// than ridge regression.
	ErrInvalidAlpha = errors.New("tsutils: alpha must be > 0")

	// ErrInvalidWeights indicates negative, non-finite or all-zero
	// observation weights.
	ErrInvalidWeights = errors.New("tsutils: invalid observation weights")

	// ErrInvalidLambdaRatio indicates lambdaMin/lambdaMax outside (0, 1).
	ErrInvalidLambdaRatio = errors.New("tsutils: lambda ratio must be in (0, 1)")

	// ErrInvalidNLambda indicates a grid length < 2, which degenerates the
	// log-space step computation.
	ErrInvalidNLambda = errors.New("tsutils: nLambda must be >= 2")

	// ErrNoVariance indicates every predictor column is constant while
	// standardisation was requested, leaving nothing to scale.
	ErrNoVariance = errors.New("tsutils: all predictor columns are constant")
)
