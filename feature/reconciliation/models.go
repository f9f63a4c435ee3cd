package reconciliation

import (
	"encoding/json"
	"fmt"
	"time"

	"reconciler/core/reconcile"
)

// Run is one persisted reconciliation.
type Run struct {
	ID             string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	FileA          string    `gorm:"column:file_a;type:varchar(255)" json:"file_a"`
	FileB          string    `gorm:"column:file_b;type:varchar(255)" json:"file_b"`
	RowsA          int       `gorm:"column:rows_a" json:"rows_a"`
	RowsB          int       `gorm:"column:rows_b" json:"rows_b"`
	ReferenceField string    `gorm:"column:reference_field;type:text" json:"reference_field"`
	Total          int       `gorm:"column:total" json:"total"`
	Matched        int       `gorm:"column:matched" json:"matched"`
	Mismatched     int       `gorm:"column:mismatched" json:"mismatched"`
	MissingInA     int       `gorm:"column:missing_in_a" json:"missing_in_a"`
	MissingInB     int       `gorm:"column:missing_in_b" json:"missing_in_b"`
	Duplicates     int       `gorm:"column:duplicates" json:"duplicates"`
	Unkeyed        int       `gorm:"column:unkeyed" json:"unkeyed"`
	Mappings       string    `gorm:"column:mappings;type:text" json:"-"`
	Tolerances     string    `gorm:"column:tolerances;type:text" json:"-"`
	ReportObject   string    `gorm:"column:report_object;type:varchar(512)" json:"report_object,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName overrides the table name.
func (Run) TableName() string {
	return "reconciliation_runs"
}

// RunResult is one result row of a persisted run.
type RunResult struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement"`
	RunID        string `gorm:"column:run_id;type:varchar(36);index"`
	Position     int    `gorm:"column:position"`
	Status       string `gorm:"column:status;type:varchar(32)"`
	ReferenceKey string `gorm:"column:reference_key;type:text"`
	Reason       string `gorm:"column:reason;type:text"`
	DataA        string `gorm:"column:data_a;type:text"`
	DataB        string `gorm:"column:data_b;type:text"`
}

// TableName overrides the table name.
func (RunResult) TableName() string {
	return "reconciliation_results"
}

// Models lists every table owned by the feature, in migration order.
func Models() []any {
	return []any{&Run{}, &RunResult{}}
}

// newRun flattens a report into a Run row.
func newRun(id string, in reconcile.Input, rep *reconcile.Report, at time.Time) (*Run, error) {
	mappings, err := json.Marshal(in.Mappings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mappings: %w", err)
	}
	tolerances, err := json.Marshal(in.Tolerances)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tolerances: %w", err)
	}

	run := &Run{
		ID:         id,
		RowsA:      rep.Summary.RowsA,
		RowsB:      rep.Summary.RowsB,
		Total:      rep.Summary.Total,
		Matched:    rep.Summary.Matched,
		Mismatched: rep.Summary.Mismatched,
		MissingInA: rep.Summary.MissingInA,
		MissingInB: rep.Summary.MissingInB,
		Duplicates: rep.Summary.Duplicates,
		Unkeyed:    rep.Summary.Unkeyed,
		Mappings:   string(mappings),
		Tolerances: string(tolerances),
		CreatedAt:  at.UTC(),
	}
	if in.A != nil {
		run.FileA = in.A.Name
	}
	if in.B != nil {
		run.FileB = in.B.Name
	}
	for _, m := range in.Mappings {
		if m.IsReference {
			run.ReferenceField = m.FieldA + " = " + m.FieldB
			break
		}
	}
	return run, nil
}

// Summary rebuilds the report summary.
func (r *Run) Summary() reconcile.Summary {
	return reconcile.Summary{
		Total:      r.Total,
		Matched:    r.Matched,
		Mismatched: r.Mismatched,
		MissingInA: r.MissingInA,
		MissingInB: r.MissingInB,
		Duplicates: r.Duplicates,
		Unkeyed:    r.Unkeyed,
		RowsA:      r.RowsA,
		RowsB:      r.RowsB,
	}
}

// FieldMappings decodes the stored mappings.
func (r *Run) FieldMappings() ([]reconcile.FieldMapping, error) {
	var mappings []reconcile.FieldMapping
	if r.Mappings == "" {
		return mappings, nil
	}
	if err := json.Unmarshal([]byte(r.Mappings), &mappings); err != nil {
		return nil, fmt.Errorf("failed to decode mappings of run %s: %w", r.ID, err)
	}
	return mappings, nil
}

// ToleranceSettings decodes the stored tolerances.
func (r *Run) ToleranceSettings() ([]reconcile.ToleranceSetting, error) {
	var tolerances []reconcile.ToleranceSetting
	if r.Tolerances == "" {
		return tolerances, nil
	}
	if err := json.Unmarshal([]byte(r.Tolerances), &tolerances); err != nil {
		return nil, fmt.Errorf("failed to decode tolerances of run %s: %w", r.ID, err)
	}
	return tolerances, nil
}

func newRunResult(runID string, position int, r reconcile.Result) (RunResult, error) {
	row := RunResult{
		RunID:        runID,
		Position:     position,
		Status:       string(r.Status),
		ReferenceKey: r.ReferenceKey,
		Reason:       r.Reason,
	}
	var err error
	if row.DataA, err = encodeRow(r.DataA); err != nil {
		return RunResult{}, err
	}
	if row.DataB, err = encodeRow(r.DataB); err != nil {
		return RunResult{}, err
	}
	return row, nil
}

// Result decodes the row back into an engine result.
func (rr *RunResult) Result() (reconcile.Result, error) {
	res := reconcile.Result{
		Status:       reconcile.Status(rr.Status),
		ReferenceKey: rr.ReferenceKey,
		Reason:       rr.Reason,
	}
	var err error
	if res.DataA, err = decodeRow(rr.DataA); err != nil {
		return reconcile.Result{}, err
	}
	if res.DataB, err = decodeRow(rr.DataB); err != nil {
		return reconcile.Result{}, err
	}
	return res, nil
}

func encodeRow(row reconcile.Row) (string, error) {
	if row == nil {
		return "", nil
	}
	raw, err := json.Marshal(row)
	if err != nil {
		return "", fmt.Errorf("failed to encode row: %w", err)
	}
	return string(raw), nil
}

func decodeRow(raw string) (reconcile.Row, error) {
	if raw == "" {
		return nil, nil
	}
	var row reconcile.Row
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		return nil, fmt.Errorf("failed to decode row: %w", err)
	}
	return row, nil
}
