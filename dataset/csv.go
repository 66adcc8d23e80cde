package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const Delimiter = ','

var ErrMalformedRow = errors.New("unable to parse row as numbers")

// ReadCSV parses comma delimited text where the first column is x and the second is y. A
// first row that does not parse as numbers is treated as a header and skipped.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var rows [][]float64
	for recNum := 0; ; recNum++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read csv record, %w", err)
		}
		line, _ := reader.FieldPos(0)

		if len(rec) != numColumns {
			return nil, fmt.Errorf("line %d has %d columns, %w", line, len(rec), ErrColumnCount)
		}

		row, err := parseRow(rec)
		if err != nil {
			if recNum == 0 {
				slog.Warn("skipping non-numeric header row", "line", line, "header", strings.Join(rec, string(Delimiter)))
				continue
			}
			return nil, fmt.Errorf("line %d, %w", line, err)
		}
		rows = append(rows, row)
	}

	return NewFromRows(rows)
}

// LoadCSV reads a dataset from the comma delimited file at path
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ds, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("unable to load dataset from %s, %w", path, err)
	}
	return ds, nil
}

func parseRow(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for i, field := range rec {
		val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d value %q, %w", i, field, ErrMalformedRow)
		}
		row[i] = val
	}
	return row, nil
}
