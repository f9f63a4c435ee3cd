package integrity

import (
	"context"
	"testing"

	"reconciler/core/database"
	"reconciler/core/storage"
	"reconciler/core/storage/mocks"
	"reconciler/feature/reconciliation"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testStorage = storage.Config{Bucket: "test-bucket", DatasetPrefix: "datasets", ReportPrefix: "reports"}

func setupDB(t *testing.T, migrate bool) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	if migrate {
		require.NoError(t, reconciliation.NewStore(db).Migrate())
	}
	return db
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, testStorage, nil, zap.NewNop())

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Listing())

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"datasets", "reports"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"datasets"})
		assert.NoError(t, err)
	})
}

func TestService_StorageDisabled(t *testing.T) {
	svc := NewService(nil, testStorage, nil, zap.NewNop())

	_, err := svc.CheckStructure(context.Background())
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, svc.FixStructure(context.Background(), []string{"x"}), ErrStorageDisabled)
}

func TestService_Schema(t *testing.T) {
	t.Run("Migrated", func(t *testing.T) {
		svc := NewService(nil, testStorage, setupDB(t, true), zap.NewNop())

		report, err := svc.CheckSchema()
		require.NoError(t, err)
		assert.True(t, report.Matched, "%+v", report.Tables)
		assert.Contains(t, report.Tables, "reconciliation_runs")
		assert.Contains(t, report.Tables, "reconciliation_results")
	})

	t.Run("Not Migrated", func(t *testing.T) {
		svc := NewService(nil, testStorage, setupDB(t, false), zap.NewNop())

		report, err := svc.CheckSchema()
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Contains(t, report.Tables["reconciliation_runs"].MissingColumns, "reference_field")
	})
}
