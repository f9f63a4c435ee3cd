package reconciliation

import (
	"net/http/httptest"
	"testing"

	"reconciler/core/database"
	"reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	feature := NewFeature(db, nil, testStorage, reconcile.Config{}, zap.NewNop())
	assert.Equal(t, "reconciliation", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.True(t, feature.Service().HistoryEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	// Load migrates the history tables.
	assert.True(t, db.Migrator().HasTable(&Run{}))
	assert.True(t, db.Migrator().HasTable(&RunResult{}))

	resp, err := app.Test(httptest.NewRequest("GET", "/reconcile/runs", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestLoader_WithoutDatabase(t *testing.T) {
	feature := NewFeature(nil, nil, testStorage, reconcile.Config{}, zap.NewNop())
	assert.False(t, feature.Service().HistoryEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/reconcile/runs", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}
