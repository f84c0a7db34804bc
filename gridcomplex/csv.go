package gridcomplex

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses a comma-separated integer grid, one row per line. Lines
// starting with '#' are ignored and cells may be padded with spaces. Ragged
// rows are returned as read; NewGridComplex rejects them.
func ReadCSV(r io.Reader) ([][]int, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var grid [][]int
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
		row := make([]int, len(rec))
		for i, cell := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("ReadCSV: row %d col %d %q: %w", line, i+1, cell, ErrBadCell)
			}
			row[i] = v
		}
		grid = append(grid, row)
	}

	return grid, nil
}
