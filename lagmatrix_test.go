package tsutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertColumn compares a lag-matrix column against want, treating NaN as
// equal to NaN.
func assertColumn(t *testing.T, m interface{ At(i, j int) float64 }, j int, want []float64) {
	t.Helper()
	for i, w := range want {
		got := m.At(i, j)
		if math.IsNaN(w) {
			assert.True(t, math.IsNaN(got), "col %d row %d: want NaN, got %v", j, i, got)
			continue
		}
		assert.Equal(t, w, got, "col %d row %d", j, i)
	}
}

func TestLagMatrix(t *testing.T) {
	nan := math.NaN()
	out, err := LagMatrix([]float64{1, 2, 3}, []int{0, 1, -1})
	require.NoError(t, err)

	r, c := out.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)

	assertColumn(t, out, 0, []float64{1, 2, 3})
	assertColumn(t, out, 1, []float64{nan, 1, 2})
	assertColumn(t, out, 2, []float64{2, 3, nan})
}

func TestLagMatrixZeroLagRoundTrip(t *testing.T) {
	x := []float64{4.5, -2.1, 0.0, 7.3}
	out, err := LagMatrix(x, []int{0})
	require.NoError(t, err)

	r, c := out.Dims()
	require.Equal(t, len(x), r)
	require.Equal(t, 1, c)
	assertColumn(t, out, 0, x)
}

func TestLagMatrixEmptyLags(t *testing.T) {
	out, err := LagMatrix([]float64{1, 2, 3}, nil)
	require.NoError(t, err)
	r, c := out.Dims()
	assert.Zero(t, r)
	assert.Zero(t, c)
}

func TestLagMatrixEmptyVector(t *testing.T) {
	_, err := LagMatrix(nil, []int{1})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestLagMatrixShiftBeyondLength(t *testing.T) {
	nan := math.NaN()
	out, err := LagMatrix([]float64{1, 2, 3}, []int{5, -5})
	require.NoError(t, err)

	assertColumn(t, out, 0, []float64{nan, nan, nan})
	assertColumn(t, out, 1, []float64{nan, nan, nan})
}

func TestLagMatrixDuplicateLags(t *testing.T) {
	nan := math.NaN()
	out, err := LagMatrix([]float64{1, 2, 3, 4}, []int{2, 2})
	require.NoError(t, err)

	want := []float64{nan, nan, 1, 2}
	assertColumn(t, out, 0, want)
	assertColumn(t, out, 1, want)
}

func TestLagMatrixMixedShifts(t *testing.T) {
	nan := math.NaN()
	x := []float64{10, 20, 30, 40, 50}
	out, err := LagMatrix(x, []int{-2, 3})
	require.NoError(t, err)

	assertColumn(t, out, 0, []float64{30, 40, 50, nan, nan})
	assertColumn(t, out, 1, []float64{nan, nan, nan, 10, 20})
}
