package reconcile

import "strings"

const (
	reasonMatched     = "All fields match within tolerance"
	reasonMissingInB  = "Record exists in File A but missing in File B"
	reasonMissingInA  = "Record exists in File B but missing in File A"
	reasonDuplicateA  = "Duplicate entry found in File A"
	reasonDuplicateB  = "Duplicate entry found in File B"
	reasonUnkeyedA    = "Reference value is empty in File A"
	reasonUnkeyedB    = "Reference value is empty in File B"
	mismatchSeparator = "; "
)

// side identifies which dataset a row came from.
type side int

const (
	sideA side = iota
	sideB
)

// keyedIndex maps reference keys to the first row carrying them and remembers
// first-occurrence order.
type keyedIndex struct {
	rows map[string]Row
	keys []string
}

func (ix *keyedIndex) get(key string) (Row, bool) {
	row, ok := ix.rows[key]
	return row, ok
}

// Run validates the input and reconciles it.
// Unlike Reconcile, a missing reference mapping is reported as ErrNoReferenceMapping.
func Run(in Input) (*Report, error) {
	if err := Validate(in.Mappings, in.Tolerances); err != nil {
		return nil, err
	}

	var a, b Dataset
	if in.A != nil {
		a = *in.A
	}
	if in.B != nil {
		b = *in.B
	}

	results := Reconcile(a, b, in.Mappings, in.Tolerances, in.Options)
	return &Report{
		Results: results,
		Summary: Summarize(results, len(a.Rows), len(b.Rows)),
	}, nil
}

// Reconcile matches the rows of a and b on the reference mapping and classifies
// every key. Without a reference mapping it returns an empty list.
func Reconcile(a, b Dataset, mappings []FieldMapping, tolerances []ToleranceSetting, opts Options) []Result {
	results := []Result{}

	ref, ok := referenceMapping(mappings)
	if !ok {
		return results
	}

	indexA, extrasA := buildIndex(a.Rows, ref.FieldA, sideA, opts)
	indexB, extrasB := buildIndex(b.Rows, ref.FieldB, sideB, opts)

	results = append(results, extrasA...)
	results = append(results, extrasB...)

	tolByType := toleranceIndex(tolerances)

	for _, key := range indexA.keys {
		rowA := indexA.rows[key]
		rowB, found := indexB.get(key)
		if !found {
			results = append(results, Result{
				Status:       StatusMissingInB,
				ReferenceKey: key,
				Reason:       reasonMissingInB,
				DataA:        rowA,
			})
			continue
		}

		mismatches := compareRows(rowA, rowB, mappings, tolByType)
		if len(mismatches) == 0 {
			results = append(results, Result{
				Status:       StatusMatched,
				ReferenceKey: key,
				Reason:       reasonMatched,
				DataA:        rowA,
				DataB:        rowB,
			})
			continue
		}

		results = append(results, Result{
			Status:       StatusMismatched,
			ReferenceKey: key,
			Reason:       strings.Join(mismatches, mismatchSeparator),
			DataA:        rowA,
			DataB:        rowB,
		})
	}

	for _, key := range indexB.keys {
		if _, seen := indexA.get(key); seen {
			continue
		}
		results = append(results, Result{
			Status:       StatusMissingInA,
			ReferenceKey: key,
			Reason:       reasonMissingInA,
			DataB:        indexB.rows[key],
		})
	}

	return results
}

// referenceMapping returns the first mapping flagged as reference.
func referenceMapping(mappings []FieldMapping) (FieldMapping, bool) {
	for _, m := range mappings {
		if m.IsReference {
			return m, true
		}
	}
	return FieldMapping{}, false
}

// toleranceIndex keys tolerance settings by field type; the first setting wins.
func toleranceIndex(tolerances []ToleranceSetting) map[string]*ToleranceSetting {
	index := make(map[string]*ToleranceSetting, len(tolerances))
	for i := range tolerances {
		t := &tolerances[i]
		if _, exists := index[t.FieldType]; !exists {
			index[t.FieldType] = t
		}
	}
	return index
}

// buildIndex keys rows by their trimmed reference value. Later rows with an
// already indexed key become duplicate results; blank keys are dropped unless
// opts.ReportUnkeyed is set.
func buildIndex(rows []Row, field string, s side, opts Options) (*keyedIndex, []Result) {
	ix := &keyedIndex{
		rows: make(map[string]Row, len(rows)),
		keys: make([]string, 0, len(rows)),
	}
	var extras []Result

	for _, row := range rows {
		key := strings.TrimSpace(row[field])
		if key == "" {
			if opts.ReportUnkeyed {
				extras = append(extras, sideResult(StatusUnkeyed, key, s, row))
			}
			continue
		}
		if _, exists := ix.rows[key]; exists {
			extras = append(extras, sideResult(StatusDuplicate, key, s, row))
			continue
		}
		ix.rows[key] = row
		ix.keys = append(ix.keys, key)
	}

	return ix, extras
}

// sideResult builds a one-sided result carrying only the originating row.
func sideResult(status Status, key string, s side, row Row) Result {
	r := Result{Status: status, ReferenceKey: key}
	switch {
	case status == StatusDuplicate && s == sideA:
		r.Reason, r.DataA = reasonDuplicateA, row
	case status == StatusDuplicate:
		r.Reason, r.DataB = reasonDuplicateB, row
	case s == sideA:
		r.Reason, r.DataA = reasonUnkeyedA, row
	default:
		r.Reason, r.DataB = reasonUnkeyedB, row
	}
	return r
}

// compareRows compares every non-reference mapping in declaration order and
// returns one explanation per unequal field.
func compareRows(rowA, rowB Row, mappings []FieldMapping, tolByType map[string]*ToleranceSetting) []string {
	var mismatches []string
	for _, m := range mappings {
		if m.IsReference {
			continue
		}
		valueA := rowA[m.FieldA]
		valueB := rowB[m.FieldB]
		tol := tolByType[m.FieldType]
		if !Equal(valueA, valueB, m.FieldType, tol) {
			mismatches = append(mismatches, Explain(m.FieldType, valueA, valueB, tol))
		}
	}
	return mismatches
}
