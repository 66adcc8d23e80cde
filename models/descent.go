package models

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-gradfit/dataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultAlpha      = 1e-4
	DefaultIterations = 1000
)

// GradientDescentOptions represents input options to run the gradient descent regression
type GradientDescentOptions struct {
	// WarmStart is the intercept and slope the descent starts from.
	WarmStart Params

	// Alpha is the learning rate scaling every update. Must be positive.
	Alpha float64

	// Iterations is the exact number of passes over the training data. Must be non-negative.
	Iterations int
}

// Validate runs basic validation on gradient descent options
func (g *GradientDescentOptions) Validate() (*GradientDescentOptions, error) {
	if g == nil {
		g = NewDefaultGradientDescentOptions()
	}

	if math.IsNaN(g.Alpha) || g.Alpha <= 0 {
		return nil, ErrNonPositiveAlpha
	}
	if math.IsInf(g.Alpha, 0) {
		return nil, ErrNonFiniteAlpha
	}
	if g.Iterations < 0 {
		return nil, ErrNegativeIterations
	}
	return g, nil
}

// NewDefaultGradientDescentOptions returns a default set of gradient descent options starting
// from a zero intercept and slope
func NewDefaultGradientDescentOptions() *GradientDescentOptions {
	return &GradientDescentOptions{
		Alpha:      DefaultAlpha,
		Iterations: DefaultIterations,
	}
}

// GradientDescentRegression fits a single feature linear model by batch gradient descent on
// the mean squared error
type GradientDescentRegression struct {
	opt *GradientDescentOptions

	history   History
	coef      []float64
	intercept float64
}

// NewGradientDescentRegression initializes a gradient descent model ready for fitting
func NewGradientDescentRegression(opt *GradientDescentOptions) (*GradientDescentRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &GradientDescentRegression{
		opt: opt,
	}, nil
}

// Fit the model according to the given training data. x must have exactly one column.
func (g *GradientDescentRegression) Fit(x, y mat.Matrix) error {
	ds, err := g.fitValidate(x, y)
	if err != nil {
		return err
	}

	hist, err := Fit(ds, g.opt.WarmStart, g.opt.Alpha, g.opt.Iterations)
	if err != nil {
		return fmt.Errorf("unable to run gradient descent, %w", err)
	}

	final, ok := hist.Last()
	if !ok {
		final = g.opt.WarmStart
	}
	g.history = hist
	g.intercept = final.Intercept
	g.coef = []float64{final.Slope}
	return nil
}

func (g *GradientDescentRegression) fitValidate(x, y mat.Matrix) (*dataset.Dataset, error) {
	if g.opt == nil {
		return nil, ErrNoOptions
	}
	if x == nil {
		return nil, ErrNoTrainingMatrix
	}
	if y == nil {
		return nil, ErrNoTargetMatrix
	}

	m, n := x.Dims()
	if n != 1 {
		return nil, fmt.Errorf("training data has %d features, %w", n, ErrSingleFeature)
	}

	ym, _ := y.Dims()
	if ym != m {
		return nil, fmt.Errorf("training data has %d rows and target has %d row, %w", m, ym, ErrTargetLenMismatch)
	}

	ds, err := dataset.New(mat.Col(nil, 0, x), mat.Col(nil, 0, y))
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrEmptyDataset, err)
	}
	return ds, nil
}

// Predict using the gradient descent model
func (g *GradientDescentRegression) Predict(x mat.Matrix) ([]float64, error) {
	if g.opt == nil {
		return nil, ErrNoOptions
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}

	_, xn := x.Dims()
	if xn != len(g.coef) {
		return nil, fmt.Errorf("got %d features in design matrix, but expected %d, %w", xn, len(g.coef), ErrFeatureLenMismatch)
	}

	res := mat.Col(nil, 0, x)
	floats.Scale(g.coef[0], res)
	floats.AddConst(g.intercept, res)
	return res, nil
}

// Score computes the coefficient of determination of the prediction
func (g *GradientDescentRegression) Score(x, y mat.Matrix) (float64, error) {
	if g.opt == nil {
		return 0.0, ErrNoOptions
	}
	if x == nil {
		return 0.0, ErrNoDesignMatrix
	}
	if y == nil {
		return 0.0, ErrNoTargetMatrix
	}

	m, _ := x.Dims()

	ym, _ := y.Dims()
	if m != ym {
		return 0.0, fmt.Errorf("design matrix has %d rows and target has %d rows, %w", m, ym, ErrTargetLenMismatch)
	}

	res, err := g.Predict(x)
	if err != nil {
		return 0.0, err
	}

	ySlice := mat.Col(nil, 0, y)

	return stat.RSquaredFrom(res, ySlice, nil), nil
}

// Intercept returns the fit intercept. Defaults to 0.0 if not fit.
func (g *GradientDescentRegression) Intercept() float64 {
	return g.intercept
}

// Coef returns the fit slope as a single element slice
func (g *GradientDescentRegression) Coef() []float64 {
	c := make([]float64, len(g.coef))
	copy(c, g.coef)
	return c
}

// History returns the intercept and slope recorded after each iteration of the last fit
func (g *GradientDescentRegression) History() History {
	return g.history
}
