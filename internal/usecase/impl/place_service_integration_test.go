package impl

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"places/config"
	"places/internal/domain/repository"
	"places/internal/infra/excel"
	"places/internal/infra/persistence/postgres"
	"places/internal/infra/pubsub"
	"places/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newIntegrationPlaceService wires the accessor to an in-memory SQLite store
// and a workbook mirror in a temp directory.
func newIntegrationPlaceService(t *testing.T) usecase.PlaceUsecase {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(context.Background(), db))

	cfg := &config.Config{
		Excel: &config.ExcelConfig{
			Path:                 filepath.Join(t.TempDir(), "places.xlsx"),
			SheetName:            "Places",
			SyncEnabled:          true,
			PreferExcel:          true,
			RepopulateOnFallback: true,
			CacheEnabled:         true,
			CacheTTL:             time.Minute,
			AutoSaveThreshold:    10,
		},
	}
	mirror, err := excel.New(cfg.Excel, newDiscardLogger(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mirror.Close() })

	return NewPlaceService(PlaceServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		PlaceRepo: postgres.NewPlaceRepository(db),
		Mirror:    mirror,
		Publisher: pubsub.NewNoopPublisher(newDiscardLogger()),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
}

func TestPlaceServiceIntegration_AddThenRead(t *testing.T) {
	srv := newIntegrationPlaceService(t)
	ctx := context.Background()

	added, ok := srv.AddPlace(ctx, &usecase.AddPlaceInput{
		ID:        "blr-1",
		Latitude:  12.9716,
		Longitude: 77.5946,
		Types:     "cafe",
		Name:      "Corner House",
		Pincode:   "560001",
	})
	require.True(t, ok)

	got := srv.GetPlace(ctx, "blr-1")
	require.NotNil(t, got)
	assert.Equal(t, "Corner House", got.Name)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
	assert.True(t, added.CreatedAt.Equal(got.CreatedAt))

	table := srv.GetAllPlaces(ctx, true)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "blr-1", table.Rows[0].ID)

	status := srv.MirrorStatistics(ctx)
	require.NotNil(t, status)
	assert.Equal(t, usecase.SyncStatusSynced, status.SyncStatus)
}

func TestPlaceServiceIntegration_UpdateUnknownCreatesNothing(t *testing.T) {
	srv := newIntegrationPlaceService(t)
	ctx := context.Background()
	name := "ghost"

	_, ok := srv.UpdatePlace(ctx, "nope", &usecase.UpdatePlaceInput{Name: &name})

	assert.False(t, ok)
	assert.False(t, srv.PlaceExists(ctx, "nope"))
}

func TestPlaceServiceIntegration_DeleteThenSync(t *testing.T) {
	srv := newIntegrationPlaceService(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, ok := srv.AddPlace(ctx, &usecase.AddPlaceInput{ID: id, Latitude: 10, Longitude: 20, Types: "park"})
		require.True(t, ok)
	}

	require.True(t, srv.DeletePlace(ctx, "b"))
	require.True(t, srv.SyncMirror(ctx))

	table := srv.GetAllPlaces(ctx, true)
	assert.Equal(t, 2, table.Len())
	assert.Nil(t, table.FindByID("b"))

	page := srv.GetPlacesByTypePaginated(ctx, "park", repository.PageQuery{Page: 9, PageSize: 1})
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
}
