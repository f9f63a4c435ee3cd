package checks

import (
	"context"
	"testing"

	"reconciler/core/storage"
	"reconciler/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var folders = []string{"datasets", "reports"}

func TestRequiredFolders(t *testing.T) {
	assert.Equal(t, folders, RequiredFolders(storage.Config{DatasetPrefix: "datasets/", ReportPrefix: "/reports"}))
	assert.Equal(t, []string{"reports"}, RequiredFolders(storage.Config{ReportPrefix: "reports"}))
}

func TestCheckStructure(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "recs").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "recs", folders)
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "recs").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "recs", mock.Anything).Return(mocks.Listing())

		missing, err := CheckStructure(context.Background(), mockClient, "recs", folders)
		require.NoError(t, err)
		assert.Equal(t, folders, missing)
	})

	t.Run("One Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "recs").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "recs", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "datasets/"
		})).Return(mocks.Listing(minio.ObjectInfo{Key: "datasets/"}))
		mockClient.On("ListObjects", mock.Anything, "recs", mock.Anything).Return(mocks.Listing())

		missing, err := CheckStructure(context.Background(), mockClient, "recs", folders)
		require.NoError(t, err)
		assert.Equal(t, []string{"reports"}, missing)
	})
}

func TestFixStructure(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "recs", "reports/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	err := FixStructure(context.Background(), mockClient, "recs", zap.NewNop(), []string{"reports"})
	assert.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}
