package models

import (
	"errors"
)

var (
	ErrEmptyDataset       = errors.New("dataset has no points")
	ErrNegativeIterations = errors.New("negative iterations")
	ErrNonPositiveAlpha   = errors.New("learning rate alpha must be positive")
	ErrInvalidAlpha       = errors.New("learning rate alpha must be non-negative")
	ErrNonFiniteAlpha     = errors.New("learning rate alpha must be finite")

	ErrNoOptions          = errors.New("no initialized model options")
	ErrTargetLenMismatch  = errors.New("target length does not match target rows")
	ErrNoTrainingMatrix   = errors.New("no training matrix")
	ErrNoTargetMatrix     = errors.New("no target matrix")
	ErrNoDesignMatrix     = errors.New("no design matrix for inference")
	ErrFeatureLenMismatch = errors.New("number of features does not match number of model coefficients")
	ErrSingleFeature      = errors.New("gradient descent regression fits exactly one feature")
)
