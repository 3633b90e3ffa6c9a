package impl

import (
	"context"
	"log/slog"
	"time"

	"places/config"
	deliverycontext "places/internal/delivery/context"
	"places/internal/domain/analytics"
	domainerrors "places/internal/domain/errors"
	"places/internal/usecase"

	"go.uber.org/fx"
)

type analyticsService struct {
	places      usecase.PlaceUsecase
	preferExcel bool
	recentLimit int
	options     analytics.ChartOptions
	logger      *slog.Logger
	now         func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	Places usecase.PlaceUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NewAnalyticsService creates the dashboard use case. Snapshots are read the
// same way the listing pages read them, mirror first when configured.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	cfg := params.Config.Analytics
	if cfg == nil {
		cfg = &config.AnalyticsConfig{}
	}

	preferExcel := false
	if params.Config.Excel != nil {
		preferExcel = params.Config.Excel.PreferExcel
	}

	return &analyticsService{
		places:      params.Places,
		preferExcel: preferExcel,
		recentLimit: cfg.RecentActivityLimit,
		options: analytics.ChartOptions{
			Height:   cfg.ChartHeight,
			MapStyle: cfg.MapStyle,
			Zoom:     cfg.DefaultZoom,
		},
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *analyticsService) Dashboard(ctx context.Context) *analytics.Dashboard {
	table := srv.places.GetAllPlaces(ctx, srv.preferExcel)
	dashboard := analytics.BuildDashboard(table, srv.now(), srv.recentLimit, srv.options)

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Built analytics dashboard",
		slog.Int("records", table.Len()),
		slog.Int("charts", len(dashboard.Charts)),
	)

	return dashboard
}

func (srv *analyticsService) Chart(ctx context.Context, name string) (*analytics.ChartSpec, error) {
	table := srv.places.GetAllPlaces(ctx, srv.preferExcel)

	spec, ok := analytics.Chart(name, table, srv.options)
	if !ok {
		return nil, domainerrors.ErrChartNotFound.WrapMessage(name)
	}

	return spec, nil
}
