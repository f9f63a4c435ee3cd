// Package reconcile reconciles two tabular datasets by matching rows on a
// reference key and comparing mapped fields under configurable tolerances.
//
// Every row or key ends up in exactly one of five classes:
//   - duplicate: a second-or-later row in one dataset with an already indexed key
//   - missing_in_b: the key exists only in dataset A
//   - missing_in_a: the key exists only in dataset B
//   - matched: every non-reference mapped field compares equal
//   - mismatched: at least one mapped field differs; the reason lists each field
//
// Rows with a blank reference value are dropped unless Options.ReportUnkeyed is
// set, in which case they are reported as unkeyed.
//
// # Architecture
//
// 1. Comparator (Equal): type-aware equality for a single field. Fields without a
// tolerance compare as trimmed, case-insensitive strings. Date fields compare by
// day distance; every other toleranced field is parsed as a decimal number and
// compared by absolute or percentage difference. Values that do not parse fall
// back to trimmed exact equality.
//
// 2. Explainer (Explain): a human-readable reason for one mismatched field.
//
// 3. Engine (Reconcile): builds one keyed index per dataset, emits duplicates,
// walks A's keys in first-occurrence order and finally sweeps B for keys never
// seen in A. The engine does no I/O and keeps no state between runs.
//
// 4. Aggregate (Report, Summary): the ordered results plus per-status counts.
//
// Run wraps Reconcile with Validate, so a missing reference mapping surfaces as
// ErrNoReferenceMapping instead of an empty result list. Cache memoises reports
// for identical inputs with a TTL and singleflight stampede protection.
//
// # Usage Example
//
//	report, err := reconcile.Run(reconcile.Input{
//	    A: datasetA,
//	    B: datasetB,
//	    Mappings: []reconcile.FieldMapping{
//	        {FieldA: "id", FieldB: "id", IsReference: true},
//	        {FieldA: "amt", FieldB: "amount", FieldType: reconcile.FieldAmount},
//	    },
//	    Tolerances: []reconcile.ToleranceSetting{
//	        {FieldType: reconcile.FieldAmount, Kind: reconcile.ToleranceAbsolute, Value: 0.01},
//	    },
//	})
package reconcile
