// Package profile loads reconciliation profiles from YAML files.
//
// A profile stores the field mappings, tolerance settings and engine options
// for a recurring reconciliation so they need not be rebuilt for every run:
//
//	name: supplier-vs-ledger
//	report_unkeyed: false
//	mappings:
//	  - {a: Invoice No, b: bill_no, type: Invoice Number, reference: true}
//	  - {a: Total, b: Amount, type: Amount}
//	tolerances:
//	  - {type: Amount, kind: absolute, value: 0.01}
//
// Profiles are validated with reconcile.Validate when decoded.
package profile
