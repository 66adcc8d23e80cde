package stats

import (
	"math"
	"sort"
)

// DetectOutliers returns the indices of values outside the percentile range of y widened by
// tukeyFactor times the inner range on both sides. Percentiles are clamped to [0, 1] and
// swapped if lowerPerc is above upperPerc.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	if len(y) == 0 {
		return nil
	}
	lowerPerc = clampPerc(lowerPerc)
	upperPerc = clampPerc(upperPerc)
	if lowerPerc > upperPerc {
		lowerPerc, upperPerc = upperPerc, lowerPerc
	}
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	yCopy := make([]float64, len(y))
	copy(yCopy, y)
	sort.Float64s(yCopy)
	lowerIdx := int(math.Floor(float64(len(yCopy)-1) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(yCopy)-1) * upperPerc))

	lower := yCopy[lowerIdx]
	upper := yCopy[upperIdx]
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if y[i] > upper || y[i] < lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}

func clampPerc(p float64) float64 {
	if math.IsNaN(p) {
		return 0.0
	}
	return math.Min(math.Max(p, 0.0), 1.0)
}
