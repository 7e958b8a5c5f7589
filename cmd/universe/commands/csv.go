package commands

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/mattdell71/universe/spectra"
)

// ErrEmptyCSV indicates a CSV file with no data rows.
var ErrEmptyCSV = errors.New("csv file holds no data rows")

// loadMatrix reads a plain numeric CSV into a dense matrix. A single
// leading header row (any non-numeric first cell) is skipped; every other
// cell must parse as a float.
func loadMatrix(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// Optional header: drop the first row when its first cell is not a number.
	if len(records) > 0 && len(records[0]) > 0 {
		if _, err = strconv.ParseFloat(records[0][0], 64); err != nil {
			records = records[1:]
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCSV, path)
	}

	var (
		n    = len(records)
		p    = len(records[0])
		data = make([]float64, 0, n*p)
	)
	for i, row := range records {
		for j, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d col %d: %w", path, i+1, j+1, err)
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(n, p, data), nil
}

// loadTable reads the values and sigmas CSVs and validates them into a
// measurement table.
func loadTable(valuesPath, sigmasPath string) (*spectra.Table, error) {
	values, err := loadMatrix(valuesPath)
	if err != nil {
		return nil, err
	}
	sigmas, err := loadMatrix(sigmasPath)
	if err != nil {
		return nil, err
	}

	return spectra.New(values, sigmas)
}

// writeSamplesCSV writes the per-k ASW samples as columns (header k=N),
// the shape an external boxplot script consumes directly.
func writeSamplesCSV(path string, ks []int, byK map[int][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, len(ks))
	rows := 0
	for i, k := range ks {
		header[i] = "k=" + strconv.Itoa(k)
		if len(byK[k]) > rows {
			rows = len(byK[k])
		}
	}
	if err = w.Write(header); err != nil {
		return err
	}

	record := make([]string, len(ks))
	for r := 0; r < rows; r++ {
		for i, k := range ks {
			record[i] = ""
			if r < len(byK[k]) {
				record[i] = strconv.FormatFloat(byK[k][r], 'g', -1, 64)
			}
		}
		if err = w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}
