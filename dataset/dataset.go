// Package dataset holds the two column (x, y) training data consumed by the gradient descent
// optimizer along with helpers to load it from delimited text and to simulate it.
package dataset

import (
	"errors"
	"fmt"

	mat_ "github.com/aouyang1/go-gradfit/mat"
	"gonum.org/v1/gonum/mat"
)

const numColumns = 2

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrDatasetLenMismatch = errors.New("x feature has a different length than observations")
	ErrColumnCount        = errors.New("dataset rows must have exactly two columns")
)

// Point is a single (x, y) observation
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dataset represents an ordered sequence of (x, y) observations stored by column. Both
// columns must be of the same length.
type Dataset struct {
	X []float64
	Y []float64
}

// New returns an instance of a Dataset given an x and y slice. The inputs are copied.
func New(x, y []float64) (*Dataset, error) {
	if len(y) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"x feature has length of %d, but values has a length of %d, %w",
			len(x), len(y), ErrDatasetLenMismatch,
		)
	}

	xSeries := make([]float64, len(x))
	ySeries := make([]float64, len(y))
	copy(xSeries, x)
	copy(ySeries, y)
	return &Dataset{
		X: xSeries,
		Y: ySeries,
	}, nil
}

// NewFromPoints returns a Dataset holding the points in order
func NewFromPoints(points []Point) (*Dataset, error) {
	if len(points) == 0 {
		return nil, ErrNoTrainingData
	}
	ds := &Dataset{
		X: make([]float64, len(points)),
		Y: make([]float64, len(points)),
	}
	for i, p := range points {
		ds.X[i] = p.X
		ds.Y[i] = p.Y
	}
	return ds, nil
}

// NewFromRows returns a Dataset from row ordered records where column 0 is x and column 1 is y
func NewFromRows(rows [][]float64) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrNoTrainingData
	}
	mx, err := mat_.NewDenseFromRows(rows, numColumns)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrColumnCount, err)
	}
	return &Dataset{
		X: mat.Col(nil, 0, mx),
		Y: mat.Col(nil, 1, mx),
	}, nil
}

// Len returns the number of observations. A nil dataset has no observations.
func (ds *Dataset) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.Y)
}

func (ds *Dataset) Copy() *Dataset {
	xSeries := make([]float64, len(ds.X))
	ySeries := make([]float64, len(ds.Y))
	copy(xSeries, ds.X)
	copy(ySeries, ds.Y)
	return &Dataset{
		X: xSeries,
		Y: ySeries,
	}
}

// Points returns the observations as (x, y) pairs in dataset order
func (ds *Dataset) Points() []Point {
	points := make([]Point, ds.Len())
	for i := range points {
		points[i] = Point{X: ds.X[i], Y: ds.Y[i]}
	}
	return points
}

// Matrices returns the x feature as an m x 1 design matrix and y as an m x 1 target matrix
func (ds *Dataset) Matrices() (*mat.Dense, *mat.Dense, error) {
	if ds.Len() == 0 {
		return nil, nil, ErrNoTrainingData
	}
	x, err := mat_.NewColVector(ds.X)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to build design matrix, %w", err)
	}
	y, err := mat_.NewColVector(ds.Y)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to build target matrix, %w", err)
	}
	return x, y, nil
}
