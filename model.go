package gradfit

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aouyang1/go-gradfit/models"
)

// Scores captures the quality of a fit on its training data
type Scores struct {
	MSE float64 `json:"mse"`
	R2  float64 `json:"r2"`
}

// Model is a serializeable representation of a fit that can be used to initialize a Fitter for
// predictions without training
type Model struct {
	Options *Options      `json:"options"`
	Params  models.Params `json:"params"`
	Scores  *Scores       `json:"scores,omitempty"`
}

// Eq returns the fit line as y ~ b + m*x
func (m Model) Eq() string {
	return fmt.Sprintf("y ~ %.5f + %.5f*x", m.Params.Intercept, m.Params.Slope)
}

// TablePrint writes a human readable summary of the model
func (m Model) TablePrint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Model: %s\n", m.Eq()); err != nil {
		return err
	}

	if m.Options != nil {
		if _, err := fmt.Fprintf(w, "  Alpha: %g    Iterations: %d    Start: (%.3f, %.3f)\n",
			m.Options.Alpha, m.Options.Iterations,
			m.Options.InitialIntercept, m.Options.InitialSlope,
		); err != nil {
			return err
		}
	}

	if m.Scores != nil {
		if _, err := fmt.Fprintf(w, "  Scores:\n    MSE: %.5f    R2: %.5f\n", m.Scores.MSE, m.Scores.R2); err != nil {
			return err
		}
	}

	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tbl, "  Parameter\tValue\t\n")
	fmt.Fprintf(tbl, "  Intercept\t%.5f\t\n", m.Params.Intercept)
	fmt.Fprintf(tbl, "  Slope\t%.5f\t\n", m.Params.Slope)
	return tbl.Flush()
}
