// Package gradfit fits the line y = intercept + slope*x to two column data by batch gradient
// descent, recording the parameter trajectory for reporting and plotting.
package gradfit

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/aouyang1/go-gradfit/dataset"
	"github.com/aouyang1/go-gradfit/models"
	"github.com/aouyang1/go-gradfit/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNotFit           = errors.New("fitter has not been fit")
	ErrNoOptionsInModel = errors.New("no options set in model")
	ErrConstantX        = errors.New("x feature has no variance")
)

// Fitter runs gradient descent on a dataset and keeps the results of the last fit
type Fitter struct {
	opt *Options

	params       models.Params
	scores       *Scores
	fitResults   *Results
	trainingData *dataset.Dataset
}

// New creates a new instance of a Fitter using the provided options. If no options are provided
// a default is used.
func New(opt *Options) (*Fitter, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid fitter options, %w", err)
	}
	return &Fitter{
		opt: opt,
		params: models.Params{
			Intercept: opt.InitialIntercept,
			Slope:     opt.InitialSlope,
		},
	}, nil
}

// NewFromModel creates a new instance of Fitter from a pre-existing model. This should be generated
// from a previous fitter call to Model().
func NewFromModel(model Model) (*Fitter, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	f, err := New(model.Options)
	if err != nil {
		return nil, err
	}
	f.params = model.Params
	f.scores = model.Scores
	return f, nil
}

// Fit runs the configured number of gradient descent iterations on the dataset
func (f *Fitter) Fit(ds *dataset.Dataset) error {
	if ds.Len() == 0 {
		return models.ErrEmptyDataset
	}
	x, y, err := ds.Matrices()
	if err != nil {
		return fmt.Errorf("unable to create training matrices, %w", err)
	}

	reg, err := models.NewGradientDescentRegression(f.opt.gradientDescentOptions())
	if err != nil {
		return fmt.Errorf("unable to initialize gradient descent regression, %w", err)
	}
	if err := reg.Fit(x, y); err != nil {
		return fmt.Errorf("unable to fit gradient descent regression, %w", err)
	}

	hist := reg.History()
	res := &Results{
		Intercept: hist.Intercept,
		Slope:     hist.Slope,
	}
	if f.opt.TrackLoss {
		res.MSE, err = models.MSEHistory(hist, ds)
		if err != nil {
			return fmt.Errorf("unable to compute loss history, %w", err)
		}
	}

	params := models.Params{
		Intercept: reg.Intercept(),
		Slope:     reg.Coef()[0],
	}
	mse, err := models.ComputeMSE(params, ds)
	if err != nil {
		return fmt.Errorf("unable to compute training mean squared error, %w", err)
	}
	r2, err := reg.Score(x, y)
	if err != nil {
		return fmt.Errorf("unable to compute training score, %w", err)
	}

	f.params = params
	f.scores = &Scores{MSE: mse, R2: r2}
	f.fitResults = res
	f.trainingData = ds.Copy()

	slog.Debug("completed gradient descent fit",
		"points", ds.Len(),
		"iterations", hist.Len(),
		"alpha", f.opt.Alpha,
		"intercept", params.Intercept,
		"slope", params.Slope,
		"mse", mse,
	)
	if math.IsNaN(mse) || math.IsInf(mse, 0) {
		slog.Warn("gradient descent diverged, consider a smaller alpha", "alpha", f.opt.Alpha, "mse", mse)
	}
	return nil
}

// Predict returns intercept + slope*x for every input x
func (f *Fitter) Predict(x []float64) []float64 {
	res := make([]float64, len(x))
	floats.ScaleTo(res, f.params.Slope, x)
	floats.AddConst(f.params.Intercept, res)
	return res
}

// Residuals returns the prediction minus the observed value on the training data
func (f *Fitter) Residuals() ([]float64, error) {
	if f.trainingData == nil {
		return nil, ErrNotFit
	}
	res := f.Predict(f.trainingData.X)
	floats.Sub(res, f.trainingData.Y)
	return res, nil
}

// Outliers returns the indices of training points whose residual falls outside the Tukey fence
// of the residual percentile range. Nil options use NewOutlierOptions.
func (f *Fitter) Outliers(opt *OutlierOptions) ([]int, error) {
	if opt == nil {
		opt = NewOutlierOptions()
	}
	residuals, err := f.Residuals()
	if err != nil {
		return nil, err
	}
	return stats.DetectOutliers(
		residuals,
		opt.LowerPercentile,
		opt.UpperPercentile,
		opt.TukeyFactor,
	), nil
}

// Params returns the current intercept and slope
func (f *Fitter) Params() models.Params {
	return f.params
}

// Scores returns the training scores of the last fit or the loaded model
func (f *Fitter) Scores() *Scores {
	return f.scores
}

// FitResults returns the parameter trajectory of the last fit
func (f *Fitter) FitResults() *Results {
	return f.fitResults
}

// TrainingData returns the training data used to fit the current model
func (f *Fitter) TrainingData() *dataset.Dataset {
	return f.trainingData
}

// Model generates a serializeable representation of the fit options, parameters and scores
func (f *Fitter) Model() Model {
	return Model{
		Options: f.opt,
		Params:  f.params,
		Scores:  f.scores,
	}
}

// ModelEq returns a string representation of the fit line as y ~ b + m*x
func (f *Fitter) ModelEq() string {
	return f.Model().Eq()
}

// LeastSquares returns the closed form ordinary least squares line which gradient descent
// converges to for a small enough alpha
func LeastSquares(ds *dataset.Dataset) (models.Params, error) {
	if ds.Len() == 0 {
		return models.Params{}, models.ErrEmptyDataset
	}
	if floats.Max(ds.X) == floats.Min(ds.X) {
		return models.Params{}, ErrConstantX
	}
	intercept, slope := stat.LinearRegression(ds.X, ds.Y, nil, false)
	return models.Params{
		Intercept: intercept,
		Slope:     slope,
	}, nil
}
