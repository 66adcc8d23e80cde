package gradfit

import (
	"fmt"
	"strings"

	"github.com/aouyang1/go-gradfit/dataset"
)

func ExampleFitter() {
	ds, err := dataset.ReadCSV(strings.NewReader("x,y\n0,0\n1,1\n2,2\n"))
	if err != nil {
		panic(err)
	}

	f, err := New(&Options{
		Alpha:      0.1,
		Iterations: 1,
		TrackLoss:  true,
	})
	if err != nil {
		panic(err)
	}
	if err := f.Fit(ds); err != nil {
		panic(err)
	}

	res := f.FitResults()
	fmt.Printf("intercept: %.4f\n", res.Intercept[0])
	fmt.Printf("slope: %.4f\n", res.Slope[0])
	fmt.Printf("mse: %.4f\n", res.MSE[0])
	// Output:
	// intercept: 0.2000
	// slope: 0.3333
	// mse: 0.5141
}
