package reconcile

// Summarize counts results per status.
// rowsA and rowsB are the dataset sizes the results were computed from.
func Summarize(results []Result, rowsA, rowsB int) Summary {
	summary := Summary{
		Total: len(results),
		RowsA: rowsA,
		RowsB: rowsB,
	}

	for _, r := range results {
		switch r.Status {
		case StatusMatched:
			summary.Matched++
		case StatusMismatched:
			summary.Mismatched++
		case StatusMissingInA:
			summary.MissingInA++
		case StatusMissingInB:
			summary.MissingInB++
		case StatusDuplicate:
			summary.Duplicates++
		case StatusUnkeyed:
			summary.Unkeyed++
		}
	}

	return summary
}

// Count returns the number of results with the given status.
func (s Summary) Count(status Status) int {
	switch status {
	case StatusMatched:
		return s.Matched
	case StatusMismatched:
		return s.Mismatched
	case StatusMissingInA:
		return s.MissingInA
	case StatusMissingInB:
		return s.MissingInB
	case StatusDuplicate:
		return s.Duplicates
	case StatusUnkeyed:
		return s.Unkeyed
	default:
		return 0
	}
}

// Discrepancies is the number of results that need attention.
func (s Summary) Discrepancies() int {
	return s.Total - s.Matched
}
