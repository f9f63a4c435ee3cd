package integrity

import (
	"context"
	"errors"

	"reconciler/core/storage"
	"reconciler/feature/integrity/checks"
	"reconciler/feature/reconciliation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageDisabled is returned by bucket checks when object storage is off.
var ErrStorageDisabled = errors.New("object storage is disabled")

// Service runs infrastructure checks.
type Service struct {
	client storage.Client
	cfg    storage.Config
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. client and db may be nil.
func NewService(client storage.Client, cfg storage.Config, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

// CheckStructure returns the bucket folders that are missing.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStructure(ctx, s.client, s.cfg.Bucket, checks.RequiredFolders(s.cfg))
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStructure(ctx, s.client, s.cfg.Bucket, s.logger, missing)
}

// CheckSchema verifies the run history tables.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, reconciliation.Models())
}
