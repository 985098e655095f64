package tsutils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LambdaMax computes the smallest elastic-net penalty above which every
// predictor coefficient is driven to zero, together with the null-model MSE
// (the MSE of the best constant-only fit).
//
// x is the N x P design matrix, y the response of length N. A nil opts uses
// NewDefaultLambdaOptions. LambdaMax is 0 only in the degenerate case where
// y is already orthogonal to every centered predictor.
func LambdaMax(x *mat.Dense, y []float64, opts *LambdaOptions) (*LambdaMaxResult, error) {
	opts, err := opts.Validate()
	if err != nil {
		return nil, err
	}
	n, p, err := checkShapes(x, y, opts.Weights)
	if err != nil {
		return nil, err
	}

	weighted := opts.Weights != nil

	// Normalized weights keep a probability-like interpretation for the
	// weighted means and variances below.
	var nw []float64
	if weighted {
		nw = make([]float64, n)
		copy(nw, opts.Weights)
		floats.Scale(1/floats.Sum(opts.Weights), nw)
	}

	// Flag constant columns up front so scaling never divides by zero.
	constant := make([]bool, p)
	allConstant := true
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, x)
		constant[j] = isConstant(col)
		if !constant[j] {
			allConstant = false
		}
	}
	if opts.Standardise && allConstant {
		return nil, fmt.Errorf("%w, cannot standardise %d columns", ErrNoVariance, p)
	}

	// Center, and under Standardise scale, each predictor column.
	x0 := mat.NewDense(n, p, nil)
	for j := 0; j < p; j++ {
		mat.Col(col, j, x)
		floats.AddConst(-stat.Mean(col, nw), col)
		if opts.Standardise {
			if weighted {
				ss := 0.0
				for i := range col {
					ss += nw[i] * col[i] * col[i]
				}
				sd := math.Sqrt(ss)
				if constant[j] {
					// Constant column: leave it unscaled.
					sd = 1
				}
				floats.Scale(1/sd, col)
			} else {
				// Population standard deviation, no Bessel correction.
				sd := math.Sqrt(floats.Dot(col, col) / float64(n))
				floats.Scale(1/sd, col)
				for i := range col {
					if math.IsNaN(col[i]) || math.IsInf(col[i], 0) {
						// 0/0 from a zero-variance column.
						col[i] = 0
					}
				}
			}
		}
		x0.SetCol(j, col)
	}

	// Center the response the same way.
	y0 := make([]float64, n)
	copy(y0, y)
	floats.AddConst(-stat.Mean(y, nw), y0)

	// Max absolute dot product between centered predictors and centered
	// response. The unweighted branch divides by N where the weighted
	// branch does not: the original (un-normalized) weights already carry
	// the effective sample scaling. This asymmetry is part of the contract
	// and is pinned by a regression test.
	maxDot := 0.0
	for j := 0; j < p; j++ {
		mat.Col(col, j, x0)
		dot := 0.0
		if weighted {
			for i := range col {
				dot += col[i] * opts.Weights[i] * y0[i]
			}
		} else {
			dot = floats.Dot(col, y0)
		}
		if a := math.Abs(dot); a > maxDot {
			maxDot = a
		}
	}

	var lambdaMax float64
	if weighted {
		lambdaMax = maxDot / opts.Alpha
	} else {
		lambdaMax = maxDot / (float64(n) * opts.Alpha)
	}

	var nullMSE float64
	if weighted {
		for i := range y0 {
			nullMSE += nw[i] * y0[i] * y0[i]
		}
	} else {
		nullMSE = floats.Dot(y0, y0) / float64(n)
	}

	return &LambdaMaxResult{LambdaMax: lambdaMax, NullMSE: nullMSE}, nil
}

// LambdaSequence produces the full candidate penalty grid for a
// regularization path: NLambda points descending geometrically from
// lambdaMax to lambdaMin = lambdaMax * LambdaRatio. Log-spacing keeps
// relative step sizes near lambdaMax, where model selection is sharpest,
// comparable to those near lambdaMin.
//
// The last grid point is forced to exactly lambdaMin, or to exactly 0 when
// opts.AddZeroLambda is set.
func LambdaSequence(x *mat.Dense, y []float64, opts *LambdaOptions) (*LambdaPath, error) {
	opts, err := opts.Validate()
	if err != nil {
		return nil, err
	}
	base, err := LambdaMax(x, y, opts)
	if err != nil {
		return nil, err
	}

	lambdaMax := base.LambdaMax
	lambdaMin := lambdaMax * opts.LambdaRatio

	lambda := make([]float64, opts.NLambda)
	if lambdaMax > 0 {
		logMax := math.Log(lambdaMax)
		step := (math.Log(lambdaMin) - logMax) / float64(opts.NLambda-1)
		for i := range lambda {
			lambda[i] = math.Exp(logMax + float64(i)*step)
		}
	}
	// lambdaMax == 0 leaves the whole grid at zero, the limit of the
	// log-space construction for a response orthogonal to every predictor.

	if opts.AddZeroLambda {
		lambda[len(lambda)-1] = 0
	} else {
		lambda[len(lambda)-1] = lambdaMin
	}

	return &LambdaPath{
		Lambda:    lambda,
		LambdaMin: lambdaMin,
		LambdaMax: lambdaMax,
		NullMSE:   base.NullMSE,
	}, nil
}

// checkShapes validates the design matrix, response and optional weights
// against each other and returns the observation and predictor counts.
func checkShapes(x *mat.Dense, y []float64, weights []float64) (n, p int, err error) {
	if x == nil {
		return 0, 0, fmt.Errorf("%w: nil design matrix", ErrNoData)
	}
	n, p = x.Dims()
	if n == 0 || p == 0 {
		return 0, 0, fmt.Errorf("%w: empty design matrix", ErrNoData)
	}
	if len(y) != n {
		return 0, 0, fmt.Errorf("%w: x has %d rows, y has %d", ErrDimensionMismatch, n, len(y))
	}
	if n < 2 {
		return 0, 0, fmt.Errorf("%w, got %d", ErrTooFewObservations, n)
	}
	if weights != nil && len(weights) != n {
		return 0, 0, fmt.Errorf("%w: x has %d rows, weights has %d", ErrDimensionMismatch, n, len(weights))
	}
	return n, p, nil
}

// isConstant reports whether v holds a single distinct value.
func isConstant(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] != v[0] {
			return false
		}
	}
	return true
}
