package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// GenerateLine simulates n observations of y = intercept + slope*x with x evenly spaced over
// [xMin, xMax] and normally distributed noise scaled by noiseScale. The seed makes the noise
// reproducible.
func GenerateLine(n int, xMin, xMax, intercept, slope, noiseScale float64, seed uint64) (*Dataset, error) {
	if n <= 0 {
		return nil, ErrNoTrainingData
	}

	x := make([]float64, n)
	if n == 1 {
		x[0] = xMin
	} else {
		floats.Span(x, xMin, xMax)
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = intercept + slope*x[i] + rng.NormFloat64()*noiseScale
	}

	return &Dataset{
		X: x,
		Y: y,
	}, nil
}
