package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoRows      = errors.New("no rows to build matrix from")
	ErrColMismatch = errors.New("column size mismatch")
)

// NewDenseFromRows builds a row ordered dense matrix requiring every row to have exactly
// n columns. The reported row index is zero based.
func NewDenseFromRows(rows [][]float64, n int) (*mat.Dense, error) {
	m := len(rows)
	if m == 0 || n <= 0 {
		return nil, ErrNoRows
	}

	data := make([]float64, 0, m*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns instead of %d, %w", i, len(row), n, ErrColMismatch)
		}
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// NewColVector returns an m x 1 matrix holding a copy of s
func NewColVector(s []float64) (*mat.Dense, error) {
	if len(s) == 0 {
		return nil, ErrNoRows
	}
	data := make([]float64, len(s))
	copy(data, s)
	return mat.NewDense(len(s), 1, data), nil
}
