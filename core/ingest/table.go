package ingest

import (
	"fmt"
	"strings"

	"reconciler/core/reconcile"
)

// buildDataset turns a header record plus data records into a Dataset.
// Leading blank records are skipped while looking for the header.
func buildDataset(name string, records [][]string) (*reconcile.Dataset, error) {
	start := -1
	for i, rec := range records {
		if !isBlank(rec) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, newError(name, ErrNoHeader, "no header row found")
	}

	headers := normalizeHeaders(records[start])
	ds := &reconcile.Dataset{
		Name:    name,
		Headers: headers,
		Rows:    make([]reconcile.Row, 0, len(records)-start-1),
	}

	for _, rec := range records[start+1:] {
		if isBlank(rec) {
			continue
		}
		row := make(reconcile.Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			} else {
				row[h] = ""
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

// normalizeHeaders trims header cells, names blank ones by position and makes
// repeated names unique.
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, cell := range raw {
		h := strings.TrimSpace(cell)
		if h == "" {
			h = fmt.Sprintf("Column %d", i+1)
		}
		seen[h]++
		if n := seen[h]; n > 1 {
			h = fmt.Sprintf("%s (%d)", h, n)
		}
		headers[i] = h
	}
	return headers
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
