package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
)

// readCSV reads a delimited-text file into a raw table.
func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	// ragged rows are tolerated, Column pads the short ones
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q as CSV: %w", path, err)
	}
	return newTable(rows), nil
}
