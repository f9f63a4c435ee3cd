// Package recognize proposes semantic field types for column headers.
//
// Recognition is advisory: it pre-populates mappings and tolerances for the
// user to confirm and is never consulted by the reconcile engine itself.
// Headers are lowercased and every non-alphanumeric character becomes "_";
// a type matches when the result contains one of its synonyms, or a synonym
// contains the result. The synonym table and badge colours are constant data.
package recognize
