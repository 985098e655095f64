package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cran/tsutils"
)

// Computes an elastic-net lambda path from a CSV dataset. The program
// expects three command-line arguments: the data file, the name of the
// response column, and the output file for the grid. The remaining columns
// are used as predictors. An optional fourth argument overrides the number
// of grid points.
func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: tsutils <data.csv> <response_column> <out.csv> [n_lambda]")
		return
	}
	dataPath := os.Args[1]
	responseCol := os.Args[2]
	outPath := os.Args[3]

	// 1. Load CSV into a Series
	series, err := tsutils.LoadCSVToSeries(dataPath)
	if err != nil {
		panic(err)
	}
	fmt.Println("Loaded series with", len(series.Time), "rows and",
		len(series.VarNames), "variables:", series.VarNames)

	// 2. Split out the response column
	x, y, err := series.Split(responseCol)
	if err != nil {
		panic(err)
	}

	// 3. Set up path options
	opts := tsutils.NewDefaultLambdaOptions()
	if len(os.Args) > 4 {
		n, err := strconv.Atoi(os.Args[4])
		if err != nil {
			panic(fmt.Errorf("parse n_lambda %q: %w", os.Args[4], err))
		}
		opts.NLambda = n
	}

	// 4. Compute the lambda sequence
	path, err := tsutils.LambdaSequence(x, y, opts)
	if err != nil {
		panic(err)
	}
	tsutils.PrintLambdaPath(path)

	// 5. Write the grid to CSV
	if err := tsutils.WriteLambdaPathCSV(outPath, path); err != nil {
		panic(err)
	}
	fmt.Println("Lambda path written to", outPath)
}
