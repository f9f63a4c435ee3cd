package report

import (
	"bufio"
	"io"
	"strings"

	"reconciler/core/reconcile"
)

// ExportFileName is the suggested download name for CSV exports.
const ExportFileName = "reconciliation_results.csv"

// Header returns the CSV header row for the given mappings.
func Header(mappings []reconcile.FieldMapping) []string {
	header := make([]string, 0, 3+2*len(mappings))
	header = append(header, "Status", "Reference Key", "Reason")
	for _, m := range mappings {
		header = append(header, m.FieldA+" (A)")
	}
	for _, m := range mappings {
		header = append(header, m.FieldB+" (B)")
	}
	return header
}

// WriteCSV writes the results as CSV: status, reference key, reason, each
// mapping's A value, then each mapping's B value. The reason is always quoted;
// other cells are quoted only when they need to be.
func WriteCSV(w io.Writer, results []reconcile.Result, mappings []reconcile.FieldMapping) error {
	bw := bufio.NewWriter(w)

	if err := writeLine(bw, Header(mappings), -1); err != nil {
		return err
	}

	for _, r := range results {
		cells := make([]string, 0, 3+2*len(mappings))
		cells = append(cells, string(r.Status), r.ReferenceKey, r.Reason)
		for _, m := range mappings {
			cells = append(cells, r.DataA[m.FieldA])
		}
		for _, m := range mappings {
			cells = append(cells, r.DataB[m.FieldB])
		}
		if err := writeLine(bw, cells, 2); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// writeLine writes one record; the cell at forceQuote is always quoted.
func writeLine(w *bufio.Writer, cells []string, forceQuote int) error {
	for i, cell := range cells {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if i == forceQuote || needsQuotes(cell) {
			cell = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		}
		if _, err := w.WriteString(cell); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

func needsQuotes(cell string) bool {
	if cell == "" {
		return false
	}
	if cell[0] == ' ' || cell[0] == '\t' || cell[len(cell)-1] == ' ' || cell[len(cell)-1] == '\t' {
		return true
	}
	return strings.ContainsAny(cell, ",\"\r\n")
}
