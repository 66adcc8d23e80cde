package gradfit

import (
	"github.com/aouyang1/go-gradfit/models"
)

// Options configures a gradient descent fit of y = intercept + slope*x
type Options struct {
	// Alpha is the learning rate. Must be positive.
	Alpha float64 `json:"alpha"`

	// Iterations is the exact number of gradient descent steps. Must be non-negative.
	Iterations int `json:"iterations"`

	InitialIntercept float64 `json:"initial_intercept"`
	InitialSlope     float64 `json:"initial_slope"`

	// TrackLoss evaluates the mean squared error after every iteration
	TrackLoss bool `json:"track_loss"`
}

// NewDefaultOptions returns a default set of options starting the descent from a zero
// intercept and slope
func NewDefaultOptions() *Options {
	return &Options{
		Alpha:      models.DefaultAlpha,
		Iterations: models.DefaultIterations,
		TrackLoss:  true,
	}
}

// Validate runs basic validation on the options. Nil options return the defaults.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if _, err := o.gradientDescentOptions().Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Options) gradientDescentOptions() *models.GradientDescentOptions {
	return &models.GradientDescentOptions{
		WarmStart: models.Params{
			Intercept: o.InitialIntercept,
			Slope:     o.InitialSlope,
		},
		Alpha:      o.Alpha,
		Iterations: o.Iterations,
	}
}

// OutlierOptions configures residual outlier detection on the training data
type OutlierOptions struct {
	UpperPercentile float64 `json:"upper_percentile"`
	LowerPercentile float64 `json:"lower_percentile"`
	TukeyFactor     float64 `json:"tukey_factor"`
}

func NewOutlierOptions() *OutlierOptions {
	return &OutlierOptions{
		UpperPercentile: 0.9,
		LowerPercentile: 0.1,
		TukeyFactor:     1.0,
	}
}
