// Package iocsv reads IsisCB CSV exports into header-mapped rows.
package iocsv

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/convert"
)

// ReadRows loads a CSV file into header-mapped rows. The first record
// is the header; every later record maps header name to cell value.
// Short records leave the remaining columns absent, long records drop
// the surplus cells.
func ReadRows(path string) ([]convert.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, InputFileError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Exports occasionally have ragged rows.
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, InputFileError(path, err)
	}

	var rows []convert.Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, InputFileError(path, err)
		}

		row := make(convert.Row, len(header))
		for i, name := range header {
			if i >= len(record) {
				break
			}
			row[name] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
