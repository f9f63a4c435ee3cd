package reconciliation

import (
	"reconciler/core/reconcile"
	"reconciler/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	store   *Store
}

// NewFeature wires the reconciliation feature. db and client may be nil.
func NewFeature(db *gorm.DB, client storage.Client, storageCfg storage.Config, defaults reconcile.Config, logger *zap.Logger) *Feature {
	var store *Store
	if db != nil {
		store = NewStore(db)
	}
	svc := NewService(store, client, storageCfg, defaults, logger)
	return &Feature{
		service: svc,
		handler: NewHandler(svc, logger),
		store:   store,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "reconciliation"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the run history tables and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.store != nil {
		if err := f.store.Migrate(); err != nil {
			return err
		}
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service to the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
