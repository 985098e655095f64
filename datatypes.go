package tsutils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Default grid parameters, matching the common regularization-path
// convention of 100 points down to 1e-4 of lambdaMax.
const (
	DefaultLambdaRatio = 1e-4
	DefaultNLambda     = 100
)

// LambdaOptions controls LambdaMax and LambdaSequence.
type LambdaOptions struct {
	// Weights holds optional non-negative observation weights, one per row
	// of x. nil means every observation is equally weighted. Partial
	// weighting is not supported: when present, the length must equal the
	// number of observations.
	Weights []float64

	// Alpha is the elastic-net mixing parameter, > 0 (1 = LASSO). The
	// lambdaMax formula divides by it.
	Alpha float64

	// Standardise centers and scales predictor columns to unit variance
	// before computing the max-dot-product statistic. Without it only
	// centering is applied.
	Standardise bool

	// LambdaRatio is lambdaMin/lambdaMax, in (0, 1).
	LambdaRatio float64

	// NLambda is the number of grid points, >= 2.
	NLambda int

	// AddZeroLambda forces the final grid point to exactly 0, giving the
	// path an OLS endpoint. Otherwise the final point is forced to exactly
	// lambdaMin to avoid floating-point drift from the log-space
	// construction.
	AddZeroLambda bool
}

// NewDefaultLambdaOptions returns the standard path configuration:
// unweighted LASSO over standardised predictors, 100 points down to
// 1e-4 * lambdaMax.
func NewDefaultLambdaOptions() *LambdaOptions {
	return &LambdaOptions{
		Alpha:       1.0,
		Standardise: true,
		LambdaRatio: DefaultLambdaRatio,
		NLambda:     DefaultNLambda,
	}
}

// Validate checks the option fields against their domains. A nil receiver
// yields the defaults. Weights are only checked for internal validity here;
// their length is checked against x when a computation runs.
func (o *LambdaOptions) Validate() (*LambdaOptions, error) {
	if o == nil {
		return NewDefaultLambdaOptions(), nil
	}
	if o.Alpha <= 0 || math.IsNaN(o.Alpha) {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidAlpha, o.Alpha)
	}
	if o.LambdaRatio <= 0 || o.LambdaRatio >= 1 || math.IsNaN(o.LambdaRatio) {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidLambdaRatio, o.LambdaRatio)
	}
	if o.NLambda < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidNLambda, o.NLambda)
	}
	if o.Weights != nil {
		sum := 0.0
		for i, w := range o.Weights {
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: weight %d is %v", ErrInvalidWeights, i, w)
			}
			sum += w
		}
		if sum == 0 {
			return nil, fmt.Errorf("%w: weights sum to zero", ErrInvalidWeights)
		}
	}
	return o, nil
}

// LambdaMaxResult describes the unregularized baseline of a fit.
type LambdaMaxResult struct {
	// LambdaMax is the smallest penalty at which every predictor
	// coefficient is driven to zero.
	LambdaMax float64

	// NullMSE is the mean squared error of the best constant-only fit.
	NullMSE float64
}

// LambdaPath is the full candidate grid for a regularization path.
type LambdaPath struct {
	// Lambda holds NLambda penalties in non-increasing order, starting at
	// LambdaMax.
	Lambda []float64

	LambdaMin float64
	LambdaMax float64
	NullMSE   float64
}

// Series is a named multivariate series loaded from CSV: T observations of
// K variables.
type Series struct {
	// Y holds the data, one row per time point.
	Y *mat.Dense

	// Time is a simple 0,1,2,... index, one entry per row.
	Time []float64

	// VarNames holds the column names from the CSV header.
	VarNames []string
}
