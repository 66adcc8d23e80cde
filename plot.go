package gradfit

import (
	"io"
	"math"

	"github.com/aouyang1/go-gradfit/dataset"
	"github.com/aouyang1/go-gradfit/models"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
)

// LineIterations generates an echart multi-line chart of values recorded per iteration. Each
// series in y must have the same length and NaN values are rendered as gaps.
func LineIterations(title string, seriesName []string, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Name: "iteration",
			},
		),
	)

	var n int
	if len(y) > 0 {
		n = len(y[0])
	}
	iterations := make([]int, n)
	for i := range iterations {
		iterations[i] = i + 1
	}

	line = line.SetXAxis(iterations)
	for i, series := range seriesName {
		lineData := make([]opts.LineData, 0, len(y[i]))
		for _, val := range y[i] {
			if math.IsNaN(val) {
				lineData = append(lineData, opts.LineData{Value: "-"})
				continue
			}
			lineData = append(lineData, opts.LineData{Value: val})
		}
		line = line.AddSeries(series, lineData)
	}

	return line
}

// ScatterFit generates an echart scatter plot of the dataset overlapped with the fit line
// spanning the observed x range
func ScatterFit(ds *dataset.Dataset, p models.Params) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Gradient Descent Fit",
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Name: "x",
				Type: "value",
			},
		),
		charts.WithYAxisOpts(
			opts.YAxis{
				Name: "y",
				Type: "value",
			},
		),
	)

	points := make([]opts.ScatterData, 0, ds.Len())
	for _, pnt := range ds.Points() {
		points = append(points, opts.ScatterData{Value: []float64{pnt.X, pnt.Y}})
	}
	scatter.AddSeries("Actual", points)

	if ds.Len() > 0 {
		xMin, xMax := floats.Min(ds.X), floats.Max(ds.X)
		fit := charts.NewLine()
		fit.AddSeries("Fit", []opts.LineData{
			{Value: []float64{xMin, p.Intercept + p.Slope*xMin}},
			{Value: []float64{xMax, p.Intercept + p.Slope*xMax}},
		})
		scatter.Overlap(fit)
	}
	return scatter
}

// PlotFit uses the Apache Echarts library to generate an html page showing the training data
// with the fit line, the parameter trajectory and the loss curve if it was tracked
func (f *Fitter) PlotFit(w io.Writer) error {
	if f.trainingData == nil || f.fitResults == nil {
		return ErrNotFit
	}

	page := components.NewPage()
	page.AddCharts(
		ScatterFit(f.trainingData, f.params),
		LineIterations(
			"Parameter History",
			[]string{"Intercept", "Slope"},
			[][]float64{
				f.fitResults.Intercept,
				f.fitResults.Slope,
			},
		),
	)
	if len(f.fitResults.MSE) > 0 {
		page.AddCharts(
			LineIterations(
				"Mean Squared Error",
				[]string{"MSE"},
				[][]float64{f.fitResults.MSE},
			),
		)
	}
	return page.Render(w)
}
