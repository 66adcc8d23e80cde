package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aouyang1/go-gradfit"
	"github.com/aouyang1/go-gradfit/dataset"
	"github.com/goccy/go-json"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.Nil(t, os.WriteFile(path, []byte("x,y\n0,0\n1,1\n2,2\n"), 0o644))
	return path
}

func setFitConfig(t *testing.T, values map[string]any) {
	for key, val := range values {
		prev := viper.Get(key)
		viper.Set(key, val)
		t.Cleanup(func() { viper.Set(key, prev) })
	}
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "WARN", "error"} {
		_, err := newLogger(level)
		assert.Nil(t, err, level)
	}
	_, err := newLogger("verbose")
	assert.NotNil(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	setFitConfig(t, map[string]any{
		"alpha":      0.25,
		"iterations": 7,
		"intercept":  1.0,
		"slope":      -1.0,
		"track-loss": false,
	})

	opt, err := optionsFromConfig()
	require.Nil(t, err)
	assert.Equal(t, &gradfit.Options{
		Alpha:            0.25,
		Iterations:       7,
		InitialIntercept: 1.0,
		InitialSlope:     -1.0,
	}, opt)

	setFitConfig(t, map[string]any{"alpha": 0.0})
	_, err = optionsFromConfig()
	assert.NotNil(t, err)
}

func TestRunFitAndPredict(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	historyPath := filepath.Join(dir, "history.json")
	plotPath := filepath.Join(dir, "fit.html")

	setFitConfig(t, map[string]any{
		"alpha":       0.1,
		"iterations":  1,
		"intercept":   0.0,
		"slope":       0.0,
		"track-loss":  true,
		"model-out":   modelPath,
		"history-out": historyPath,
		"plot":        plotPath,
	})

	var out bytes.Buffer
	require.Nil(t, runFit(&out, writeData(t)))
	assert.True(t, strings.HasPrefix(out.String(), "Model: y ~ 0.20000 + 0.33333*x"))
	assert.Contains(t, out.String(), "Least squares reference: y ~ ")
	assert.Contains(t, out.String(), "1.00000*x")

	historyBytes, err := os.ReadFile(historyPath)
	require.Nil(t, err)
	var history gradfit.Results
	require.Nil(t, json.Unmarshal(historyBytes, &history))
	assert.Equal(t, 1, history.Len())
	assert.InDeltaSlice(t, []float64{0.2}, history.Intercept, 1e-12)
	assert.Len(t, history.MSE, 1)

	_, err = os.Stat(plotPath)
	require.Nil(t, err)

	out.Reset()
	require.Nil(t, runPredict(&out, modelPath, []string{"0", "3"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "0\t0.2"))
	assert.True(t, strings.HasPrefix(lines[1], "3\t1.2"))

	assert.NotNil(t, runPredict(&out, modelPath, []string{"abc"}))
	assert.NotNil(t, runPredict(&out, filepath.Join(dir, "missing.json"), []string{"1"}))
}

func TestWritePlot(t *testing.T) {
	dir := t.TempDir()

	f, err := gradfit.New(nil)
	require.Nil(t, err)
	assert.ErrorIs(t, writePlot(filepath.Join(dir, "unfit.html"), f), gradfit.ErrNotFit)
	assert.NotNil(t, writePlot(filepath.Join(dir, "missing", "fit.html"), f))

	ds, err := dataset.New([]float64{0, 1, 2}, []float64{0, 1, 2})
	require.Nil(t, err)
	require.Nil(t, f.Fit(ds))

	path := filepath.Join(dir, "fit.html")
	require.Nil(t, writePlot(path, f))
	page, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.Contains(t, string(page), "</html>")
}

func TestRunFitMissingData(t *testing.T) {
	err := runFit(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
