package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aouyang1/go-gradfit"
	"github.com/aouyang1/go-gradfit/dataset"
	"github.com/aouyang1/go-gradfit/models"
	"github.com/goccy/go-json"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fitDescription = "fit a line to a two column csv file, x in the first column and y in the second."

var fitCmd = &cobra.Command{
	Use:   "fit <data.csv> [flags]",
	Short: fitDescription,
	Long:  fitDescription,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("profile") {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(viper.GetString("profile-path"))).Stop()
		}
		return runFit(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	defaults := gradfit.NewDefaultOptions()

	flags := fitCmd.Flags()
	flags.Float64P("alpha", "a", defaults.Alpha, "learning rate, must be positive")
	flags.IntP("iterations", "n", defaults.Iterations, "exact number of gradient descent iterations")
	flags.Float64("intercept", defaults.InitialIntercept, "initial intercept")
	flags.Float64("slope", defaults.InitialSlope, "initial slope")
	flags.Bool("track-loss", defaults.TrackLoss, "record the mean squared error after every iteration")
	flags.String("model-out", "", "write the fit model as json to this path")
	flags.String("history-out", "", "write the per iteration intercept, slope and loss as json to this path")
	flags.String("plot", "", "write an html plot of the fit to this path")
	flags.Bool("profile", false, "write a cpu profile of the fit")
	flags.String("profile-path", ".", "directory for the cpu profile")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
}

func optionsFromConfig() (*gradfit.Options, error) {
	opt := &gradfit.Options{
		Alpha:            viper.GetFloat64("alpha"),
		Iterations:       viper.GetInt("iterations"),
		InitialIntercept: viper.GetFloat64("intercept"),
		InitialSlope:     viper.GetFloat64("slope"),
		TrackLoss:        viper.GetBool("track-loss"),
	}
	return opt.Validate()
}

func runFit(w io.Writer, path string) error {
	ds, err := dataset.LoadCSV(path)
	if err != nil {
		return err
	}

	opt, err := optionsFromConfig()
	if err != nil {
		return fmt.Errorf("invalid fit options, %w", err)
	}

	f, err := gradfit.New(opt)
	if err != nil {
		return err
	}
	if err := f.Fit(ds); err != nil {
		return err
	}

	m := f.Model()
	if err := m.TablePrint(w); err != nil {
		return err
	}

	ols, err := gradfit.LeastSquares(ds)
	if err != nil {
		slog.Warn("unable to compute least squares reference", "error", err.Error())
	} else {
		olsMSE, err := models.ComputeMSE(ols, ds)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Least squares reference: y ~ %.5f + %.5f*x    MSE: %.5f\n", ols.Intercept, ols.Slope, olsMSE)
	}

	outliers, err := f.Outliers(nil)
	if err != nil {
		return err
	}
	if len(outliers) > 0 {
		slog.Warn("training data has residual outliers", "count", len(outliers), "indices", outliers)
	}

	if out := viper.GetString("model-out"); out != "" {
		if err := writeJSON(out, m); err != nil {
			return fmt.Errorf("unable to write model, %w", err)
		}
		slog.Info("wrote model", "path", out)
	}

	if out := viper.GetString("history-out"); out != "" {
		if err := writeJSON(out, f.FitResults()); err != nil {
			return fmt.Errorf("unable to write fit history, %w", err)
		}
		slog.Info("wrote fit history", "path", out, "iterations", f.FitResults().Len())
	}

	if out := viper.GetString("plot"); out != "" {
		if err := writePlot(out, f); err != nil {
			return err
		}
		slog.Info("wrote plot", "path", out)
	}
	return nil
}

func writePlot(path string, f *gradfit.Fitter) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.PlotFit(file); err != nil {
		file.Close()
		return fmt.Errorf("unable to plot fit, %w", err)
	}
	return file.Close()
}

func writeJSON(path string, v any) error {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0o644)
}
