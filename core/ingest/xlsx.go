package ingest

import (
	"bytes"

	"reconciler/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// parseXLSX reads the first worksheet of an Office Open XML workbook.
func parseXLSX(name string, raw []byte) (*reconcile.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, newError(name, ErrMalformed, "could not open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, newError(name, ErrNoHeader, "workbook has no worksheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, newError(name, ErrMalformed, "could not read worksheet %q: %v", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, newError(name, ErrEmptyFile, "worksheet %q is empty", sheets[0])
	}

	return buildDataset(name, rows)
}
