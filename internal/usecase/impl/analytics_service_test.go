package impl

import (
	"context"
	"testing"
	"time"

	"places/config"
	"places/internal/domain/analytics"
	"places/internal/domain/entity"
	domainerrors "places/internal/domain/errors"
	mockUsecase "places/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyticsTable() *entity.PlaceTable {
	rows := make([]*entity.Place, 0, 6)
	for i, types := range []string{"cafe", "cafe", "park", "museum", "cafe", "park"} {
		place := storedPlace(string(rune('a' + i)))
		place.Types = types
		place.Latitude += float64(i) * 0.01
		place.CreatedAt = fixedNow.Add(-time.Duration(i) * 24 * time.Hour)
		place.UpdatedAt = place.CreatedAt
		rows = append(rows, place)
	}

	return entity.NewPlaceTable(rows)
}

func createTestAnalyticsService(t *testing.T, preferExcel bool) (*analyticsService, *mockUsecase.MockPlaceUsecase) {
	places := mockUsecase.NewMockPlaceUsecase(t)
	cfg := &config.Config{
		Excel:     &config.ExcelConfig{PreferExcel: preferExcel},
		Analytics: &config.AnalyticsConfig{RecentActivityLimit: 3, ChartHeight: 400, MapStyle: "open-street-map", DefaultZoom: 10},
	}

	srv := NewAnalyticsService(AnalyticsServiceParams{
		Places: places,
		Config: cfg,
		Logger: newDiscardLogger(),
	}).(*analyticsService)
	srv.now = func() time.Time { return fixedNow }

	return srv, places
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	srv, places := createTestAnalyticsService(t, true)
	ctx := context.Background()

	places.EXPECT().GetAllPlaces(ctx, true).Return(analyticsTable())

	dashboard := srv.Dashboard(ctx)

	require.NotNil(t, dashboard)
	assert.Equal(t, 6, dashboard.Basic.TotalPlaces)
	assert.Equal(t, "cafe", dashboard.Basic.MostCommonType)
	assert.Len(t, dashboard.RecentActivity, 3)
	assert.Equal(t, "a", dashboard.RecentActivity[0].ID)
	assert.Contains(t, dashboard.Charts, analytics.ChartPlacesByType)
	assert.Equal(t, 400, dashboard.Charts[analytics.ChartPlacesByType].Height)
}

func TestAnalyticsService_Dashboard_EmptySnapshot(t *testing.T) {
	srv, places := createTestAnalyticsService(t, false)
	ctx := context.Background()

	places.EXPECT().GetAllPlaces(ctx, false).Return(entity.EmptyPlaceTable())

	dashboard := srv.Dashboard(ctx)

	assert.Equal(t, 0, dashboard.Basic.TotalPlaces)
	assert.Empty(t, dashboard.Charts)
	assert.Empty(t, dashboard.RecentActivity)
}

func TestAnalyticsService_Chart(t *testing.T) {
	srv, places := createTestAnalyticsService(t, false)
	ctx := context.Background()

	places.EXPECT().GetAllPlaces(ctx, false).Return(analyticsTable())

	spec, err := srv.Chart(ctx, analytics.ChartPlacesByType)

	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.Equal(t, analytics.ChartBar, spec.Kind)
	assert.Equal(t, "cafe", spec.Labels[0])
}

func TestAnalyticsService_Chart_Unknown(t *testing.T) {
	srv, places := createTestAnalyticsService(t, false)
	ctx := context.Background()

	places.EXPECT().GetAllPlaces(ctx, false).Return(analyticsTable())

	spec, err := srv.Chart(ctx, "pie_of_everything")

	assert.Nil(t, spec)
	assert.ErrorIs(t, err, domainerrors.ErrChartNotFound)
}
