package reconciliation

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"reconciler/core/database"
	"reconciler/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// setupMockDB creates a gorm DB on top of sqlmock using the MySQL dialector.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// setupStore opens a migrated in-memory SQLite store.
func setupStore(t *testing.T) *Store {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	store := NewStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func sampleRun(t *testing.T, id string, at time.Time) (*Run, []reconcile.Result) {
	in := reconcile.Input{
		A: &reconcile.Dataset{Name: "a.csv", Rows: []reconcile.Row{{"id": "1"}, {"id": "2"}}},
		B: &reconcile.Dataset{Name: "b.csv", Rows: []reconcile.Row{{"ref": "1"}}},
		Mappings: []reconcile.FieldMapping{
			{FieldA: "id", FieldB: "ref", FieldType: reconcile.FieldInvoiceNumber, IsReference: true},
		},
	}
	rep, err := reconcile.Run(in)
	require.NoError(t, err)

	run, err := newRun(id, in, rep, at)
	require.NoError(t, err)
	return run, rep.Results
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	run, results := sampleRun(t, "run-1", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, store.Save(ctx, run, results))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "a.csv", got.FileA)
	assert.Equal(t, "id = ref", got.ReferenceField)
	assert.Equal(t, 1, got.Matched)
	assert.Equal(t, 1, got.MissingInB)
	assert.Equal(t, 2, got.Summary().RowsA)

	mappings, err := got.FieldMappings()
	require.NoError(t, err)
	assert.Equal(t, "ref", mappings[0].FieldB)

	loaded, err := store.Results(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, results, loaded)
}

func TestStore_GetUnknown(t *testing.T) {
	store := setupStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "new", "mid"} {
		offset := map[int]time.Duration{0: 0, 1: 2 * time.Hour, 2: time.Hour}[i]
		run, results := sampleRun(t, id, base.Add(offset))
		require.NoError(t, store.Save(ctx, run, results))
	}

	runs, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "mid", runs[1].ID)
}

func TestStore_SetReportObjectAndDelete(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	run, results := sampleRun(t, "run-1", time.Now())
	require.NoError(t, store.Save(ctx, run, results))

	require.NoError(t, store.SetReportObject(ctx, "run-1", "reports/run-1.csv"))
	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "reports/run-1.csv", got.ReportObject)

	assert.ErrorIs(t, store.SetReportObject(ctx, "other", "x"), ErrRunNotFound)

	require.NoError(t, store.Delete(ctx, "run-1"))
	_, err = store.Get(ctx, "run-1")
	assert.ErrorIs(t, err, ErrRunNotFound)

	left, err := store.Results(ctx, "run-1")
	require.NoError(t, err)
	assert.Empty(t, left)

	assert.ErrorIs(t, store.Delete(ctx, "run-1"), ErrRunNotFound)
}

func TestStore_LongReferenceKey(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	key := strings.Repeat("K", 300)
	field := strings.Repeat("h", 200) + " = " + strings.Repeat("g", 200)
	run, _ := sampleRun(t, "run-long", time.Now())
	run.ReferenceField = field
	results := []reconcile.Result{{Status: reconcile.StatusMissingInB, ReferenceKey: key, Reason: "missing"}}
	require.NoError(t, store.Save(ctx, run, results))

	got, err := store.Get(ctx, "run-long")
	require.NoError(t, err)
	assert.Equal(t, field, got.ReferenceField)

	loaded, err := store.Results(ctx, "run-long")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, key, loaded[0].ReferenceKey)

	// Unbounded columns keep strict MySQL from rejecting long keys.
	for model, name := range map[any]string{&Run{}: "ReferenceField", &RunResult{}: "ReferenceKey"} {
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)
		assert.Equal(t, "text", s.LookUpField(name).TagSettings["TYPE"], name)
	}
}

func TestStore_MySQLQueries(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	t.Run("Get Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM `reconciliation_runs` WHERE id = \\?").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := store.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("List Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM `reconciliation_runs` ORDER BY created_at DESC").
			WillReturnError(assert.AnError)

		_, err := store.List(context.Background(), 10)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Results Decoding", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "run_id", "position", "status", "reference_key", "reason", "data_a", "data_b"}).
			AddRow(1, "r", 0, "missing_in_b", "K1", "Record exists in File A but missing in File B", `{"id":"K1"}`, "")
		mock.ExpectQuery("SELECT \\* FROM `reconciliation_results` WHERE run_id = \\?").WillReturnRows(rows)

		results, err := store.Results(context.Background(), "r")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, reconcile.StatusMissingInB, results[0].Status)
		assert.Equal(t, reconcile.Row{"id": "K1"}, results[0].DataA)
		assert.Nil(t, results[0].DataB)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
