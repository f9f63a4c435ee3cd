// Package report renders reconciliation results for people and spreadsheets.
//
// Filter implements the results table's status filter and free-text search.
// WriteCSV produces the downloadable report with columns
// Status, Reference Key, Reason, <A field> (A)..., <B field> (B)...
// in mapping order.
package report
