// Package ingest turns uploaded files into reconcile.Dataset values.
//
// Every cell is kept as a trimmed string; typing happens later in the
// comparator. Supported inputs:
//   - CSV (.csv, .txt): RFC 4180 quoting, ragged rows padded with empty cells,
//     UTF-8 / UTF-16 with BOM, or Windows-1252
//   - Excel workbooks (.xlsx, .xlsm): the first worksheet, via excelize
//
// Hard failures (empty file, no header row, unreadable encoding, unsupported
// extension, malformed structure) are returned as *Error values wrapping a
// sentinel, so callers can show the message and match with errors.Is.
//
// # Usage
//
//	ds, err := ingest.LoadFile("invoices.csv")
//	ds, err := ingest.Load(ctx, storageClient, "s3://uploads/ledger.xlsx")
package ingest
