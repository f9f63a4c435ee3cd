package reconcile

// Row is a single parsed record keyed by header name.
// Ingestion yields only strings; typing happens on demand during comparison.
type Row map[string]string

// Dataset is one side of a reconciliation.
type Dataset struct {
	// Name is the source file or object name.
	Name string `json:"name"`

	// Headers is the ordered list of column headers.
	Headers []string `json:"headers"`

	// Rows holds the records in file order.
	Rows []Row `json:"rows"`

	// RecognizedFields maps header name to a semantic field type.
	// Informational only; the engine reads types from mappings.
	RecognizedFields map[string]string `json:"recognized_fields,omitempty"`
}

// Semantic field types recognised out of the box.
const (
	FieldInvoiceNumber = "Invoice Number"
	FieldDate          = "Date"
	FieldAmount        = "Amount"
	FieldTax           = "Tax"
	FieldQuantity      = "Quantity"
	FieldDescription   = "Description"
	FieldSupplier      = "Supplier"
	FieldCustomer      = "Customer"
)

// FieldMapping pairs a column from dataset A with a column from dataset B.
type FieldMapping struct {
	// FieldA is the header in dataset A.
	FieldA string `json:"file_a" yaml:"a"`

	// FieldB is the header in dataset B.
	FieldB string `json:"file_b" yaml:"b"`

	// FieldType is the semantic type, used for tolerance lookup.
	FieldType string `json:"field_type" yaml:"type"`

	// IsReference marks the key field used to match rows.
	IsReference bool `json:"is_reference" yaml:"reference"`
}

// ToleranceKind selects how a tolerance value is interpreted.
type ToleranceKind string

const (
	// ToleranceAbsolute allows |A-B| <= value.
	ToleranceAbsolute ToleranceKind = "absolute"
	// TolerancePercentage allows |A-B| / avg(|A|,|B|) * 100 <= value.
	TolerancePercentage ToleranceKind = "percentage"
	// ToleranceDays allows a date distance of at most value days.
	ToleranceDays ToleranceKind = "days"
)

// Valid reports whether k is one of the known kinds.
func (k ToleranceKind) Valid() bool {
	switch k {
	case ToleranceAbsolute, TolerancePercentage, ToleranceDays:
		return true
	default:
		return false
	}
}

// ToleranceSetting configures the comparison of one semantic field type.
type ToleranceSetting struct {
	FieldType string        `json:"field_type" yaml:"type"`
	Kind      ToleranceKind `json:"tolerance_type" yaml:"kind"`
	Value     float64       `json:"value" yaml:"value"`
}

// Status is the classification assigned to a result.
type Status string

const (
	StatusMatched    Status = "matched"
	StatusMismatched Status = "mismatched"
	StatusMissingInB Status = "missing_in_b"
	StatusMissingInA Status = "missing_in_a"
	StatusDuplicate  Status = "duplicate"
	// StatusUnkeyed is only emitted when Options.ReportUnkeyed is set.
	StatusUnkeyed Status = "unkeyed"
)

// Statuses lists every status in report order.
var Statuses = []Status{
	StatusMatched,
	StatusMismatched,
	StatusMissingInA,
	StatusMissingInB,
	StatusDuplicate,
	StatusUnkeyed,
}

// Result is the classification of one row or key.
// Results are never modified after the engine returns them.
type Result struct {
	Status       Status `json:"status"`
	ReferenceKey string `json:"reference_key"`
	Reason       string `json:"reason"`

	// DataA is the row from dataset A, nil when the key is absent there.
	DataA Row `json:"data_a,omitempty"`

	// DataB is the row from dataset B, nil when the key is absent there.
	DataB Row `json:"data_b,omitempty"`
}

// Options tweaks engine behaviour.
type Options struct {
	// ReportUnkeyed emits an unkeyed result for rows whose reference value is blank
	// instead of silently dropping them.
	ReportUnkeyed bool `json:"report_unkeyed" yaml:"report_unkeyed"`
}

// Input bundles everything a reconciliation run needs.
type Input struct {
	A          *Dataset           `json:"a"`
	B          *Dataset           `json:"b"`
	Mappings   []FieldMapping     `json:"mappings"`
	Tolerances []ToleranceSetting `json:"tolerances"`
	Options    Options            `json:"options"`
}

// Report is the result aggregate handed to reporting collaborators.
type Report struct {
	// Results holds every classified result in engine order.
	Results []Result `json:"results"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a reconciliation run.
type Summary struct {
	// Total is the number of results.
	Total int `json:"total"`

	Matched    int `json:"matched"`
	Mismatched int `json:"mismatched"`
	MissingInA int `json:"missing_in_a"`
	MissingInB int `json:"missing_in_b"`
	Duplicates int `json:"duplicates"`
	Unkeyed    int `json:"unkeyed"`

	// RowsA and RowsB are the number of rows read from each dataset.
	RowsA int `json:"rows_a"`
	RowsB int `json:"rows_b"`
}
