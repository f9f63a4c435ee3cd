package cmd

import (
	"fmt"
	"io"
	"strconv"

	"reconciler/core/reconcile"
	"reconciler/feature/reconciliation"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeTable renders headers and rows as an aligned text table.
func writeTable(w io.Writer, headers []string, align []tw.Align, rows [][]string) error {
	config := tablewriter.Config{}
	if len(align) > 0 {
		config.Header.Alignment = tw.CellAlignment{PerColumn: align}
		config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}
	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	table.Header(header...)

	for _, row := range rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

func writeRunsTable(w io.Writer, runs []reconciliation.Run) error {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.FileA,
			r.FileB,
			strconv.Itoa(r.Matched),
			strconv.Itoa(r.Mismatched),
			strconv.Itoa(r.MissingInA),
			strconv.Itoa(r.MissingInB),
		})
	}
	return writeTable(w,
		[]string{"ID", "Created", "File A", "File B", "Matched", "Mismatched", "Miss A", "Miss B"},
		[]tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignRight, tw.AlignRight, tw.AlignRight},
		rows)
}

// printRecognized lists each header of ds with its detected field type.
func printRecognized(w io.Writer, ds *reconcile.Dataset) error {
	fmt.Fprintf(w, "\n=== %s (%d rows) ===\n", ds.Name, len(ds.Rows))

	rows := make([][]string, 0, len(ds.Headers))
	for _, h := range ds.Headers {
		ft, ok := ds.RecognizedFields[h]
		if !ok {
			ft = "-"
		}
		rows = append(rows, []string{h, ft})
	}
	return writeTable(w, []string{"Header", "Field type"}, nil, rows)
}
