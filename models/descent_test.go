package models

import (
	"math"
	"testing"

	"github.com/aouyang1/go-gradfit/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testModel(t *testing.T, model Model, x, y mat.Matrix, intercept float64, coef []float64, tol float64) {
	err := model.Fit(x, y)
	require.Nil(t, err)

	assert.InDelta(t, intercept, model.Intercept(), tol)

	c := model.Coef()
	assert.InDeltaSlice(t, coef, c, tol)

	r2, err := model.Score(x, y)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, r2, tol)
}

func TestGradientDescentOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt      *GradientDescentOptions
		err      error
		expected *GradientDescentOptions
	}{
		"nil": {nil, nil, NewDefaultGradientDescentOptions()},
		"valid": {
			&GradientDescentOptions{
				WarmStart:  Params{Intercept: 1, Slope: 2},
				Alpha:      0.1,
				Iterations: 100,
			}, nil,
			&GradientDescentOptions{
				WarmStart:  Params{Intercept: 1, Slope: 2},
				Alpha:      0.1,
				Iterations: 100,
			},
		},
		"zero iterations": {
			&GradientDescentOptions{Alpha: 0.1},
			nil,
			&GradientDescentOptions{Alpha: 0.1},
		},
		"zero alpha": {
			&GradientDescentOptions{Iterations: 10},
			ErrNonPositiveAlpha, nil,
		},
		"negative alpha": {
			&GradientDescentOptions{Alpha: -1.0, Iterations: 10},
			ErrNonPositiveAlpha, nil,
		},
		"infinite alpha": {
			&GradientDescentOptions{Alpha: math.Inf(1), Iterations: 10},
			ErrNonFiniteAlpha, nil,
		},
		"negative iterations": {
			&GradientDescentOptions{Alpha: 0.1, Iterations: -1},
			ErrNegativeIterations, nil,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			opt, err := td.opt.Validate()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, opt)
		})
	}
}

func TestGradientDescentRegression(t *testing.T) {
	// y = 2 + 3*x
	ds, err := dataset.GenerateLine(50, 0, 1, 2.0, 3.0, 0.0, 1)
	require.Nil(t, err)
	x, y, err := ds.Matrices()
	require.Nil(t, err)

	model, err := NewGradientDescentRegression(
		&GradientDescentOptions{
			Alpha:      0.5,
			Iterations: 5000,
		},
	)
	require.Nil(t, err)
	testModel(t, model, x, y, 2.0, []float64{3.0}, 1e-5)

	hist := model.History()
	assert.Equal(t, 5000, hist.Len())
	last, ok := hist.Last()
	require.True(t, ok)
	assert.Equal(t, model.Intercept(), last.Intercept)
	assert.Equal(t, model.Coef()[0], last.Slope)

	res, err := model.Predict(mat.NewDense(2, 1, []float64{0, 10}))
	require.Nil(t, err)
	assert.InDeltaSlice(t, []float64{2.0, 32.0}, res, 1e-4)
}

func TestGradientDescentRegressionZeroIterations(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{0, 1, 2})
	y := mat.NewDense(3, 1, []float64{0, 1, 2})

	model, err := NewGradientDescentRegression(
		&GradientDescentOptions{
			WarmStart: Params{Intercept: 0, Slope: 1},
			Alpha:     0.1,
		},
	)
	require.Nil(t, err)
	require.Nil(t, model.Fit(x, y))

	assert.Equal(t, 0.0, model.Intercept())
	assert.Equal(t, []float64{1.0}, model.Coef())
	assert.Equal(t, 0, model.History().Len())
}

func TestGradientDescentRegressionErrors(t *testing.T) {
	model, err := NewGradientDescentRegression(nil)
	require.Nil(t, err)

	x := mat.NewDense(3, 1, []float64{0, 1, 2})
	y := mat.NewDense(3, 1, []float64{0, 1, 2})

	testData := map[string]struct {
		x   mat.Matrix
		y   mat.Matrix
		err error
	}{
		"no training":     {nil, y, ErrNoTrainingMatrix},
		"no target":       {x, nil, ErrNoTargetMatrix},
		"two features":    {mat.NewDense(3, 2, nil), y, ErrSingleFeature},
		"target mismatch": {x, mat.NewDense(2, 1, nil), ErrTargetLenMismatch},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			err := model.Fit(td.x, td.y)
			assert.ErrorIs(t, err, td.err)
		})
	}

	_, err = model.Predict(x)
	assert.ErrorIs(t, err, ErrFeatureLenMismatch, "unfit model has no coefficients")

	_, err = model.Predict(nil)
	assert.ErrorIs(t, err, ErrNoDesignMatrix)

	_, err = model.Score(x, mat.NewDense(2, 1, nil))
	assert.ErrorIs(t, err, ErrTargetLenMismatch)

	_, err = NewGradientDescentRegression(&GradientDescentOptions{})
	assert.ErrorIs(t, err, ErrNonPositiveAlpha)

	var empty GradientDescentRegression
	assert.ErrorIs(t, empty.Fit(x, y), ErrNoOptions)
}

func BenchmarkGradientDescentRegression(b *testing.B) {
	ds, err := dataset.GenerateLine(1000, 0, 1, 2.0, 3.0, 0.5, 1)
	if err != nil {
		b.Fatal(err)
	}
	x, y, err := ds.Matrices()
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		model, err := NewGradientDescentRegression(
			&GradientDescentOptions{
				Alpha:      0.5,
				Iterations: 100,
			},
		)
		if err != nil {
			b.Error(err)
			continue
		}
		if err := model.Fit(x, y); err != nil {
			b.Error(err)
			continue
		}
	}
}
