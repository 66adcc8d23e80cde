package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	testData := map[string]struct {
		input string
		err   error
		x     []float64
		y     []float64
	}{
		"empty": {
			input: "",
			err:   ErrNoTrainingData,
		},
		"header only": {
			input: "x,y\n",
			err:   ErrNoTrainingData,
		},
		"no header": {
			input: "0,0\n1,1\n2,2\n",
			x:     []float64{0, 1, 2},
			y:     []float64{0, 1, 2},
		},
		"header and spaces": {
			input: "area, price\n 1.5, 10\n2.5 ,20\n",
			x:     []float64{1.5, 2.5},
			y:     []float64{10, 20},
		},
		"blank lines": {
			input: "1,2\n\n3,4\n",
			x:     []float64{1, 3},
			y:     []float64{2, 4},
		},
		"malformed row": {
			input: "1,2\nabc,4\n",
			err:   ErrMalformedRow,
		},
		"too many columns": {
			input: "1,2,3\n",
			err:   ErrColumnCount,
		},
		"too few columns": {
			input: "1,2\n3\n",
			err:   ErrColumnCount,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := ReadCSV(strings.NewReader(td.input))
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.x, ds.X)
			assert.Equal(t, td.y, ds.Y)
		})
	}
}

func TestLoadCSV(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "data.csv")
	require.Nil(t, os.WriteFile(path, []byte("0,1\n1,3\n2,5\n"), 0o644))

	ds, err := LoadCSV(path)
	require.Nil(t, err)
	assert.Equal(t, []float64{0, 1, 2}, ds.X)
	assert.Equal(t, []float64{1, 3, 5}, ds.Y)
}
