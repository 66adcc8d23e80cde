package gradfit

// Results holds the parameter trajectory of a fit. Index i of every slice is the state after
// iteration i+1. MSE is only populated when loss tracking is enabled.
type Results struct {
	Intercept []float64 `json:"intercept"`
	Slope     []float64 `json:"slope"`
	MSE       []float64 `json:"mse,omitempty"`
}

// Len returns the number of recorded iterations
func (r *Results) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Intercept)
}
