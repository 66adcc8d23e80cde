package models

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-gradfit/dataset"
	"github.com/aouyang1/go-gradfit/floatsunrolled"
)

// Params is the (intercept, slope) pair of the line y = intercept + slope*x
type Params struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// History records the parameters after each completed iteration. Index i holds the state
// after iteration i+1 and both slices always have the same length.
type History struct {
	Intercept []float64 `json:"intercept"`
	Slope     []float64 `json:"slope"`
}

func (h History) Len() int {
	return len(h.Intercept)
}

// At returns the parameters after iteration i+1
func (h History) At(i int) Params {
	return Params{Intercept: h.Intercept[i], Slope: h.Slope[i]}
}

// Last returns the parameters after the final iteration. false is returned if no iterations
// were run.
func (h History) Last() (Params, bool) {
	n := h.Len()
	if n == 0 {
		return Params{}, false
	}
	return h.At(n - 1), true
}

// stepper holds the dataset columns and a residual buffer reused across iterations
type stepper struct {
	x        []float64
	y        []float64
	residual []float64

	// 2/n factor shared by both partial derivatives
	scale float64
}

func newStepper(ds *dataset.Dataset) (*stepper, error) {
	n := ds.Len()
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	if len(ds.X) != n {
		return nil, fmt.Errorf("x has %d points and y has %d points, %w", len(ds.X), n, dataset.ErrDatasetLenMismatch)
	}
	return &stepper{
		x:        ds.X,
		y:        ds.Y,
		residual: make([]float64, n),
		scale:    2.0 / float64(n),
	}, nil
}

// loadResidual fills the residual buffer with the prediction errors of p
func (s *stepper) loadResidual(p Params) []float64 {
	return floatsunrolled.ResidualTo(s.residual, p.Intercept, p.Slope, s.x, s.y)
}

func (s *stepper) mse(p Params) float64 {
	r := s.loadResidual(p)
	return floatsunrolled.Dot(r, r) / float64(len(r))
}

// gradient computes both partial derivatives from a single residual snapshot of p
func (s *stepper) gradient(p Params) Params {
	r := s.loadResidual(p)
	return Params{
		Intercept: s.scale * floatsunrolled.Sum(r),
		Slope:     s.scale * floatsunrolled.Dot(r, s.x),
	}
}

func (s *stepper) step(p Params, alpha float64) Params {
	g := s.gradient(p)
	return Params{
		Intercept: p.Intercept - alpha*g.Intercept,
		Slope:     p.Slope - alpha*g.Slope,
	}
}

// ComputeMSE returns the mean squared error of the line described by p over the dataset
func ComputeMSE(p Params, ds *dataset.Dataset) (float64, error) {
	s, err := newStepper(ds)
	if err != nil {
		return 0.0, err
	}
	return s.mse(p), nil
}

// InterceptDerivative returns (2/n) * sum((b + m*x) - y), the partial derivative of the mean
// squared error with respect to the intercept
func InterceptDerivative(p Params, ds *dataset.Dataset) (float64, error) {
	g, err := Gradient(p, ds)
	if err != nil {
		return 0.0, err
	}
	return g.Intercept, nil
}

// SlopeDerivative returns (2/n) * sum(((b + m*x) - y) * x), the partial derivative of the mean
// squared error with respect to the slope
func SlopeDerivative(p Params, ds *dataset.Dataset) (float64, error) {
	g, err := Gradient(p, ds)
	if err != nil {
		return 0.0, err
	}
	return g.Slope, nil
}

// Gradient returns both partial derivatives of the mean squared error evaluated at p
func Gradient(p Params, ds *dataset.Dataset) (Params, error) {
	s, err := newStepper(ds)
	if err != nil {
		return Params{}, err
	}
	return s.gradient(p), nil
}

// StepGradient performs a single batch gradient descent update. Both derivatives are taken at
// the input p before either parameter moves. An alpha of 0 returns p unchanged.
func StepGradient(p Params, ds *dataset.Dataset, alpha float64) (Params, error) {
	if math.IsNaN(alpha) || alpha < 0 {
		return Params{}, fmt.Errorf("got alpha %v, %w", alpha, ErrInvalidAlpha)
	}
	if math.IsInf(alpha, 0) {
		return Params{}, fmt.Errorf("got alpha %v, %w", alpha, ErrNonFiniteAlpha)
	}
	s, err := newStepper(ds)
	if err != nil {
		return Params{}, err
	}
	if alpha == 0 {
		return p, nil
	}
	return s.step(p, alpha), nil
}

// Fit runs exactly iterations gradient descent steps starting from init and returns the
// parameters recorded after every step. There is no early stopping.
func Fit(ds *dataset.Dataset, init Params, alpha float64, iterations int) (History, error) {
	if iterations < 0 {
		return History{}, fmt.Errorf("got %d iterations, %w", iterations, ErrNegativeIterations)
	}
	if math.IsNaN(alpha) || alpha <= 0 {
		return History{}, fmt.Errorf("got alpha %v, %w", alpha, ErrNonPositiveAlpha)
	}
	if math.IsInf(alpha, 0) {
		return History{}, fmt.Errorf("got alpha %v, %w", alpha, ErrNonFiniteAlpha)
	}
	s, err := newStepper(ds)
	if err != nil {
		return History{}, err
	}

	hist := History{
		Intercept: make([]float64, 0, iterations),
		Slope:     make([]float64, 0, iterations),
	}
	p := init
	for i := 0; i < iterations; i++ {
		p = s.step(p, alpha)
		hist.Intercept = append(hist.Intercept, p.Intercept)
		hist.Slope = append(hist.Slope, p.Slope)
	}
	return hist, nil
}

// MSEHistory evaluates the mean squared error at every recorded iteration of hist
func MSEHistory(hist History, ds *dataset.Dataset) ([]float64, error) {
	s, err := newStepper(ds)
	if err != nil {
		return nil, err
	}
	loss := make([]float64, hist.Len())
	for i := range loss {
		loss[i] = s.mse(hist.At(i))
	}
	return loss, nil
}
