package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"reconciler/core/reconcile"
)

// parseCSV reads RFC 4180 text. Quoted fields may contain commas, newlines and
// doubled quotes, which stand for a literal quote character. A bare quote inside
// an unquoted field (5" screen) is kept as is.
func parseCSV(name, text string) (*reconcile.Dataset, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, newError(name, ErrMalformed, "malformed CSV at line %d: %v", parseErr.Line, parseErr.Err)
			}
			return nil, newError(name, ErrMalformed, "malformed CSV: %v", err)
		}
		records = append(records, rec)
	}

	return buildDataset(name, records)
}
