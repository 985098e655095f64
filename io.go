package tsutils

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// LoadCSVToSeries loads a headered CSV file of numeric columns into a
// Series. Every data row must have as many fields as the header; cells are
// parsed as float64.
func LoadCSVToSeries(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("empty header in %s", path)
	}
	k := len(header)

	var (
		data  []float64
		times []float64
		row   int
	)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+2, err)
		}

		// Skip completely empty lines.
		if len(record) == 1 && record[0] == "" {
			continue
		}

		if len(record) != k {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", row+2, k, len(record))
		}

		for j, s := range record {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("parse float at row %d col %d (%q): %w", row+2, j+1, s, err)
			}
			data = append(data, v)
		}

		times = append(times, float64(row))
		row++
	}

	if row == 0 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	return &Series{
		Y:        mat.NewDense(row, k, data),
		Time:     times,
		VarNames: header,
	}, nil
}

// Split carves the named response column out of the series, returning the
// remaining columns as a design matrix and the response as a vector. Column
// order of the predictors is preserved.
func (s *Series) Split(responseCol string) (x *mat.Dense, y []float64, err error) {
	if s == nil || s.Y == nil {
		return nil, nil, fmt.Errorf("%w: nil series", ErrNoData)
	}

	respIdx := -1
	for j, name := range s.VarNames {
		if name == responseCol {
			respIdx = j
			break
		}
	}
	if respIdx < 0 {
		return nil, nil, fmt.Errorf("response column %q not found in %v", responseCol, s.VarNames)
	}

	t, k := s.Y.Dims()
	if k < 2 {
		return nil, nil, fmt.Errorf("%w: need at least one predictor besides %q", ErrNoData, responseCol)
	}

	y = make([]float64, t)
	mat.Col(y, respIdx, s.Y)

	x = mat.NewDense(t, k-1, nil)
	col := make([]float64, t)
	dst := 0
	for j := 0; j < k; j++ {
		if j == respIdx {
			continue
		}
		mat.Col(col, j, s.Y)
		x.SetCol(dst, col)
		dst++
	}

	return x, y, nil
}

// WriteLambdaPathCSV writes the grid to CSV with columns: Index, Lambda.
func WriteLambdaPathCSV(path string, p *LambdaPath) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Index", "Lambda"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, l := range p.Lambda {
		record := []string{
			fmt.Sprintf("%d", i),
			strconv.FormatFloat(l, 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// PrintLambdaPath prints a summary of the grid and its endpoints.
func PrintLambdaPath(p *LambdaPath) {
	fmt.Println("=== Lambda Path Summary ===")
	fmt.Printf("Grid points: %d\n", len(p.Lambda))
	fmt.Printf("LambdaMax:   %g\n", p.LambdaMax)
	fmt.Printf("LambdaMin:   %g\n", p.LambdaMin)
	fmt.Printf("NullMSE:     %g\n", p.NullMSE)
	if len(p.Lambda) > 0 {
		fmt.Printf("First:       %g\n", p.Lambda[0])
		fmt.Printf("Last:        %g\n", p.Lambda[len(p.Lambda)-1])
	}
	fmt.Println()
}

// PrintLagMatrix prints a lag matrix with gonum's formatter.
func PrintLagMatrix(m *mat.Dense, lags []int) {
	fmt.Printf("=== Lag Matrix (lags %v) ===\n", lags)
	fmt.Printf("%v\n", mat.Formatted(m, mat.Prefix(" ")))
}
