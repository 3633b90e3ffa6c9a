package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"places/config"
	"places/internal/domain/entity"
	"places/internal/domain/repository"
	"places/internal/domain/service"
	"places/internal/infra/metrics"
	mockRepo "places/internal/mocks/repository"
	mockService "places/internal/mocks/service"
	"places/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// placeServiceFixtures holds all test dependencies for place service tests.
type placeServiceFixtures struct {
	service   usecase.PlaceUsecase
	txManager *mockRepo.MockTransactionManager
	placeRepo *mockRepo.MockPlaceRepository
	mirror    *mockService.MockPlaceMirror
	publisher *mockService.MockEventPublisher
	registry  *prometheus.Registry
}

func createTestPlaceService(t *testing.T, cfg *config.Config) placeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	mirror := mockService.NewMockPlaceMirror(t)
	publisher := mockService.NewMockEventPublisher(t)
	registry := metrics.NewRegistry()

	srv := NewPlaceService(PlaceServiceParams{
		TxManager: txManager,
		PlaceRepo: placeRepo,
		Mirror:    mirror,
		Publisher: publisher,
		Config:    cfg,
		Logger:    newDiscardLogger(),
		Metrics:   metrics.NewMetrics(registry),
	})
	srv.(*placeService).now = func() time.Time { return fixedNow }

	return placeServiceFixtures{
		service:   srv,
		txManager: txManager,
		placeRepo: placeRepo,
		mirror:    mirror,
		publisher: publisher,
		registry:  registry,
	}
}

// onExecute runs the transaction body against txRepo.
func (f placeServiceFixtures) onExecute(t *testing.T, ctx context.Context, txRepo *mockRepo.MockPlaceRepository) {
	f.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewPlaceRepository().Return(txRepo)

			return fn(factory)
		})
}

func eventOfType(eventType service.PlaceEventType, placeID string) any {
	return mock.MatchedBy(func(event *service.PlaceEvent) bool {
		return event.Type == eventType && event.PlaceID == placeID
	})
}

func storedPlace(id string) *entity.Place {
	created := fixedNow.Add(-24 * time.Hour)

	return &entity.Place{
		ID:        id,
		Latitude:  12.97,
		Longitude: 77.59,
		Types:     "cafe",
		Name:      "Blue Tokai",
		Address:   "12 MG Road",
		Pincode:   "560001",
		Rating:    4.2,
		Followers: 120,
		Country:   "India",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestPlaceService_AddPlace_Success(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()
	txRepo := mockRepo.NewMockPlaceRepository(t)

	fx.onExecute(t, ctx, txRepo)
	txRepo.EXPECT().PlaceExists(ctx, "cafe-1").Return(false, nil)
	txRepo.EXPECT().CreatePlace(ctx, mock.AnythingOfType("*entity.Place")).Return(nil)
	fx.mirror.EXPECT().AddRow(ctx, mock.AnythingOfType("*entity.Place")).Return(nil)
	fx.publisher.EXPECT().PublishPlaceEvent(ctx, eventOfType(service.PlaceCreated, "cafe-1")).Return(nil)

	place, ok := fx.service.AddPlace(ctx, &usecase.AddPlaceInput{
		ID:        " cafe-1 ",
		Latitude:  12.97,
		Longitude: 77.59,
		Types:     "cafe",
		Name:      "Blue Tokai",
		Rating:    7,
		Followers: -3,
	})

	require.True(t, ok)
	assert.Equal(t, "cafe-1", place.ID)
	assert.Equal(t, 0.0, place.Rating)
	assert.Equal(t, 0.0, place.Followers)
	assert.Equal(t, entity.DefaultCountry, place.Country)
	assert.Equal(t, fixedNow, place.CreatedAt)
	assert.Equal(t, place.CreatedAt, place.UpdatedAt)
}

func TestPlaceService_AddPlace_GeneratesID(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()
	txRepo := mockRepo.NewMockPlaceRepository(t)

	fx.onExecute(t, ctx, txRepo)
	txRepo.EXPECT().PlaceExists(ctx, mock.AnythingOfType("string")).Return(false, nil)
	txRepo.EXPECT().CreatePlace(ctx, mock.AnythingOfType("*entity.Place")).Return(nil)
	fx.mirror.EXPECT().AddRow(ctx, mock.AnythingOfType("*entity.Place")).Return(nil)
	fx.publisher.EXPECT().PublishPlaceEvent(ctx, mock.Anything).Return(nil)

	place, ok := fx.service.AddPlace(ctx, &usecase.AddPlaceInput{Latitude: 1, Longitude: 2, Country: "India"})

	require.True(t, ok)
	_, err := uuid.Parse(place.ID)
	assert.NoError(t, err)
	assert.Equal(t, "India", place.Country)
}

func TestPlaceService_AddPlace_InvalidCoordinates(t *testing.T) {
	fx := createTestPlaceService(t, nil)

	place, ok := fx.service.AddPlace(context.Background(), &usecase.AddPlaceInput{ID: "x", Latitude: 91, Longitude: 0})

	assert.False(t, ok)
	assert.Nil(t, place)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPlaceService_AddPlace_Duplicate(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()
	txRepo := mockRepo.NewMockPlaceRepository(t)

	fx.onExecute(t, ctx, txRepo)
	txRepo.EXPECT().PlaceExists(ctx, "cafe-1").Return(true, nil)

	place, ok := fx.service.AddPlace(ctx, &usecase.AddPlaceInput{ID: "cafe-1", Latitude: 1, Longitude: 1})

	assert.False(t, ok)
	assert.Nil(t, place)
}

func TestPlaceService_AddPlace_SideEffectFailuresAreIgnored(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()
	txRepo := mockRepo.NewMockPlaceRepository(t)

	fx.onExecute(t, ctx, txRepo)
	txRepo.EXPECT().PlaceExists(ctx, "cafe-1").Return(false, nil)
	txRepo.EXPECT().CreatePlace(ctx, mock.Anything).Return(nil)
	fx.mirror.EXPECT().AddRow(ctx, mock.Anything).Return(errors.New("workbook locked"))
	fx.publisher.EXPECT().PublishPlaceEvent(ctx, mock.Anything).Return(errors.New("topic missing"))

	_, ok := fx.service.AddPlace(ctx, &usecase.AddPlaceInput{ID: "cafe-1", Latitude: 1, Longitude: 1})

	assert.True(t, ok)
}

func TestPlaceService_UpdatePlace_Success(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()
	txRepo := mockRepo.NewMockPlaceRepository(t)
	name := "  Third Wave  "
	rating := 4.8

	fx.onExecute(t, ctx, txRepo)
	txRepo.EXPECT().FindPlaceByID(ctx, "cafe-1").Return(storedPlace("cafe-1"), nil)
	txRepo.EXPECT().
		UpdatePlace(ctx, "cafe-1", mock.MatchedBy(func(update *repository.PlaceUpdate) bool {
			return *update.Name == "Third Wave" && *update.Rating == rating && update.Types == nil && update.UpdatedAt.Equal(fixedNow)
		})).
		Return(nil)
	fx.mirror.EXPECT().
		UpdateRow(ctx, mock.MatchedBy(func(place *entity.Place) bool { return place.Name == "Third Wave" })).
		Return(nil)
	fx.publisher.EXPECT().PublishPlaceEvent(ctx, eventOfType(service.PlaceUpdated, "cafe-1")).Return(nil)

	place, ok := fx.service.UpdatePlace(ctx, "cafe-1", &usecase.UpdatePlaceInput{Name: &name, Rating: &rating})

	require.True(t, ok)
	assert.Equal(t, "Third Wave", place.Name)
	assert.Equal(t, "cafe", place.Types)
	assert.Equal(t, fixedNow, place.UpdatedAt)
	assert.True(t, place.UpdatedAt.After(place.CreatedAt))
}

func TestPlaceService_UpdatePlace_NotFound(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()
	txRepo := mockRepo.NewMockPlaceRepository(t)
	name := "ghost"

	fx.onExecute(t, ctx, txRepo)
	txRepo.EXPECT().FindPlaceByID(ctx, "missing").Return(nil, repository.ErrPlaceNotFound)

	place, ok := fx.service.UpdatePlace(ctx, "missing", &usecase.UpdatePlaceInput{Name: &name})

	assert.False(t, ok)
	assert.Nil(t, place)
}

func TestPlaceService_UpdatePlace_RejectsInvalidFields(t *testing.T) {
	rating := 5.5
	followers := -1.0
	latitude := -100.0

	tests := []struct {
		name  string
		input *usecase.UpdatePlaceInput
	}{
		{name: "rating above range", input: &usecase.UpdatePlaceInput{Rating: &rating}},
		{name: "negative followers", input: &usecase.UpdatePlaceInput{Followers: &followers}},
		{name: "latitude out of range", input: &usecase.UpdatePlaceInput{Latitude: &latitude}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPlaceService(t, nil)

			_, ok := fx.service.UpdatePlace(context.Background(), "cafe-1", tt.input)

			assert.False(t, ok)
		})
	}
}

func TestPlaceService_DeletePlace_Success(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()
	txRepo := mockRepo.NewMockPlaceRepository(t)

	fx.onExecute(t, ctx, txRepo)
	txRepo.EXPECT().FindPlaceByID(ctx, "cafe-1").Return(storedPlace("cafe-1"), nil)
	txRepo.EXPECT().DeletePlace(ctx, "cafe-1").Return(nil)
	fx.mirror.EXPECT().DeleteRow(ctx, "cafe-1").Return(nil)
	fx.publisher.EXPECT().PublishPlaceEvent(ctx, eventOfType(service.PlaceDeleted, "cafe-1")).Return(nil)

	assert.True(t, fx.service.DeletePlace(ctx, "cafe-1"))
}

func TestPlaceService_DeletePlace_NotFound(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()
	txRepo := mockRepo.NewMockPlaceRepository(t)

	fx.onExecute(t, ctx, txRepo)
	txRepo.EXPECT().FindPlaceByID(ctx, "missing").Return(nil, repository.ErrPlaceNotFound)

	assert.False(t, fx.service.DeletePlace(ctx, "missing"))
}

func TestPlaceService_GetPlace(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()

	fx.placeRepo.EXPECT().FindPlaceByID(ctx, "cafe-1").Return(storedPlace("cafe-1"), nil)
	fx.placeRepo.EXPECT().FindPlaceByID(ctx, "missing").Return(nil, repository.ErrPlaceNotFound)

	assert.Equal(t, "Blue Tokai", fx.service.GetPlace(ctx, "cafe-1").Name)
	assert.Nil(t, fx.service.GetPlace(ctx, "missing"))
}

func TestPlaceService_PlaceExists_ErrorIsFalse(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()

	fx.placeRepo.EXPECT().PlaceExists(ctx, "cafe-1").Return(false, errors.New("connection reset"))

	assert.False(t, fx.service.PlaceExists(ctx, "cafe-1"))
}

func TestPlaceService_PanicIsContained(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()

	fx.placeRepo.EXPECT().
		FindPlaceByID(ctx, "boom").
		RunAndReturn(func(context.Context, string) (*entity.Place, error) {
			panic("driver bug")
		})

	assert.Nil(t, fx.service.GetPlace(ctx, "boom"))

	count, err := testutil.GatherAndCount(fx.registry, "places_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPlaceService_GetAllPlaces_PrefersMirror(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()
	table := entity.NewPlaceTable([]*entity.Place{storedPlace("cafe-1")})

	fx.mirror.EXPECT().Enabled().Return(true)
	fx.mirror.EXPECT().Read(ctx, true).Return(table, nil)

	assert.Same(t, table, fx.service.GetAllPlaces(ctx, true))
}

func TestPlaceService_GetAllPlaces_EmptyMirrorFallsBackAndRepopulates(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()

	fx.mirror.EXPECT().Enabled().Return(true)
	fx.mirror.EXPECT().Read(ctx, true).Return(entity.EmptyPlaceTable(), nil)
	fx.placeRepo.EXPECT().FindAllPlaces(ctx).Return([]*entity.Place{storedPlace("a"), storedPlace("b")}, nil)
	fx.mirror.EXPECT().
		SyncFromDatabase(ctx, mock.MatchedBy(func(table *entity.PlaceTable) bool { return table.Len() == 2 })).
		Return(nil)

	assert.Equal(t, 2, fx.service.GetAllPlaces(ctx, true).Len())
}

func TestPlaceService_GetAllPlaces_RepopulateDisabled(t *testing.T) {
	cfg := &config.Config{Excel: &config.ExcelConfig{RepopulateOnFallback: false}}
	fx := createTestPlaceService(t, cfg)
	ctx := context.Background()

	fx.mirror.EXPECT().Enabled().Return(true)
	fx.mirror.EXPECT().Read(ctx, true).Return(nil, errors.New("corrupt workbook"))
	fx.placeRepo.EXPECT().FindAllPlaces(ctx).Return([]*entity.Place{storedPlace("a")}, nil)

	assert.Equal(t, 1, fx.service.GetAllPlaces(ctx, true).Len())
}

func TestPlaceService_GetAllPlaces_DatabaseOnly(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()

	fx.placeRepo.EXPECT().FindAllPlaces(ctx).Return(nil, errors.New("database down"))

	table := fx.service.GetAllPlaces(ctx, false)

	require.NotNil(t, table)
	assert.True(t, table.IsEmpty())
	assert.True(t, table.HasColumn(entity.ColumnID))
}

func TestPlaceService_GetPlacesPaginated(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()
	items := []*entity.Place{storedPlace("k"), storedPlace("l")}

	fx.placeRepo.EXPECT().
		FindPlacesPage(ctx, repository.PageQuery{Page: 2, PageSize: 10, SortBy: "id", SortOrder: "DESC", Search: "cafe"}).
		Return(items, int64(12), nil)

	page := fx.service.GetPlacesPaginated(ctx, repository.PageQuery{
		Page:      2,
		PageSize:  10,
		SortBy:    "name; DROP TABLE places",
		SortOrder: "desc",
		Search:    " cafe ",
		Type:      "ignored",
	})

	assert.Equal(t, items, page.Items)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestPlaceService_GetPlacesPaginated_Empty(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()

	fx.placeRepo.EXPECT().FindPlacesPage(ctx, mock.Anything).Return([]*entity.Place{}, int64(0), nil)

	page := fx.service.GetPlacesPaginated(ctx, repository.PageQuery{Page: 5, PageSize: 20})

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, int64(0), page.Total)
}

func TestPlaceService_GetPlacesByTypePaginated(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()

	fx.placeRepo.EXPECT().
		FindPlacesPage(ctx, mock.MatchedBy(func(q repository.PageQuery) bool { return q.Type == "cafe" && q.Search == "" })).
		Return([]*entity.Place{storedPlace("a")}, int64(1), nil)

	page := fx.service.GetPlacesByTypePaginated(ctx, "cafe", repository.PageQuery{Page: 1, PageSize: 10, Search: "dropped"})

	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPlaceService_GetPlacesByTypePaginated_BlankType(t *testing.T) {
	fx := createTestPlaceService(t, nil)

	page := fx.service.GetPlacesByTypePaginated(context.Background(), "  ", repository.PageQuery{Page: 3, PageSize: 10})

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
}

func TestPlaceService_SyncMirror(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		fx := createTestPlaceService(t, nil)
		fx.mirror.EXPECT().Enabled().Return(false)

		assert.False(t, fx.service.SyncMirror(context.Background()))
	})

	t.Run("writes snapshot", func(t *testing.T) {
		fx := createTestPlaceService(t, nil)
		ctx := context.Background()
		fx.mirror.EXPECT().Enabled().Return(true)
		fx.placeRepo.EXPECT().FindAllPlaces(ctx).Return([]*entity.Place{storedPlace("a")}, nil)
		fx.mirror.EXPECT().SyncFromDatabase(ctx, mock.Anything).Return(nil)

		assert.True(t, fx.service.SyncMirror(ctx))
	})

	t.Run("write failure", func(t *testing.T) {
		fx := createTestPlaceService(t, nil)
		ctx := context.Background()
		fx.mirror.EXPECT().Enabled().Return(true)
		fx.placeRepo.EXPECT().FindAllPlaces(ctx).Return([]*entity.Place{}, nil)
		fx.mirror.EXPECT().SyncFromDatabase(ctx, mock.Anything).Return(errors.New("disk full"))

		assert.False(t, fx.service.SyncMirror(ctx))
	})
}

func TestPlaceService_ForceMirrorResync_IgnoresSyncSwitch(t *testing.T) {
	fx := createTestPlaceService(t, nil)
	ctx := context.Background()

	fx.placeRepo.EXPECT().FindAllPlaces(ctx).Return([]*entity.Place{storedPlace("a")}, nil)
	fx.mirror.EXPECT().ForceFullResync(ctx, mock.Anything).Return(nil)

	assert.True(t, fx.service.ForceMirrorResync(ctx))
	fx.mirror.AssertNotCalled(t, "Enabled")
}

func TestPlaceService_MirrorStatistics(t *testing.T) {
	tests := []struct {
		name       string
		mirrorRows int
		dbCount    int64
		dbErr      error
		wantStatus string
		wantDiff   int64
	}{
		{name: "synced", mirrorRows: 3, dbCount: 3, wantStatus: usecase.SyncStatusSynced},
		{name: "out of sync", mirrorRows: 1, dbCount: 4, wantStatus: usecase.SyncStatusOutOfSync, wantDiff: 3},
		{name: "count failure", mirrorRows: 2, dbErr: errors.New("timeout"), wantStatus: usecase.SyncStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPlaceService(t, nil)
			ctx := context.Background()

			fx.mirror.EXPECT().Statistics(ctx).Return(&service.MirrorStatistics{FileExists: true, RecordCount: tt.mirrorRows}, nil)
			fx.placeRepo.EXPECT().CountPlaces(ctx).Return(tt.dbCount, tt.dbErr)

			status := fx.service.MirrorStatistics(ctx)

			require.NotNil(t, status)
			assert.Equal(t, tt.wantStatus, status.SyncStatus)
			assert.Equal(t, tt.wantDiff, status.RecordDifference)
			assert.Equal(t, tt.mirrorRows, status.RecordCount)
		})
	}
}
