package reconciliation

import (
	"context"
	"errors"
	"fmt"

	"reconciler/core/reconcile"

	"gorm.io/gorm"
)

// ErrRunNotFound is returned when a run id is unknown.
var ErrRunNotFound = errors.New("run not found")

const resultBatchSize = 500

// Store persists runs and their results with gorm.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the run tables.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate run history: %w", err)
	}
	return nil
}

// Save stores a run and its results in one transaction.
func (s *Store) Save(ctx context.Context, run *Run, results []reconcile.Result) error {
	rows := make([]RunResult, 0, len(results))
	for i, r := range results {
		row, err := newRunResult(run.ID, i, r)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return fmt.Errorf("failed to save run %s: %w", run.ID, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&rows, resultBatchSize).Error; err != nil {
			return fmt.Errorf("failed to save results of run %s: %w", run.ID, err)
		}
		return nil
	})
}

// Get returns a run without its results.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	return &run, nil
}

// List returns the most recent runs first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	runs := []Run{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Results returns the results of a run in their original order.
func (s *Store) Results(ctx context.Context, id string) ([]reconcile.Result, error) {
	var rows []RunResult
	err := s.db.WithContext(ctx).Where("run_id = ?", id).Order("position").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load results of run %s: %w", id, err)
	}

	results := make([]reconcile.Result, 0, len(rows))
	for i := range rows {
		r, err := rows[i].Result()
		if err != nil {
			return nil, fmt.Errorf("run %s position %d: %w", id, rows[i].Position, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// SetReportObject records where the run's CSV report was published.
func (s *Store) SetReportObject(ctx context.Context, id, object string) error {
	res := s.db.WithContext(ctx).Model(&Run{}).Where("id = ?", id).Update("report_object", object)
	if res.Error != nil {
		return fmt.Errorf("failed to update run %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

// Delete removes a run and its results.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", id).Delete(&RunResult{}).Error; err != nil {
			return fmt.Errorf("failed to delete results of run %s: %w", id, err)
		}
		res := tx.Where("id = ?", id).Delete(&Run{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete run %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return nil
	})
}
