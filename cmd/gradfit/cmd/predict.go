package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aouyang1/go-gradfit"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var predictDescription = "predict y for each x using a model written by fit --model-out."

var predictCmd = &cobra.Command{
	Use:   "predict <model.json> <x>... [flags]",
	Short: predictDescription,
	Long:  predictDescription,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPredict(cmd.OutOrStdout(), args[0], args[1:])
	},
}

func loadModel(path string) (gradfit.Model, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return gradfit.Model{}, err
	}

	var model gradfit.Model
	if err := json.Unmarshal(bytes, &model); err != nil {
		return gradfit.Model{}, fmt.Errorf("unable to parse model %s, %w", path, err)
	}
	return model, nil
}

func runPredict(w io.Writer, modelPath string, rawX []string) error {
	model, err := loadModel(modelPath)
	if err != nil {
		return err
	}
	f, err := gradfit.NewFromModel(model)
	if err != nil {
		return err
	}

	x := make([]float64, len(rawX))
	for i, raw := range rawX {
		x[i], err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid x value %q, %w", raw, err)
		}
	}

	for i, y := range f.Predict(x) {
		fmt.Fprintf(w, "%g\t%g\n", x[i], y)
	}
	return nil
}
