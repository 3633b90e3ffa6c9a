package usecase

import (
	"context"

	"places/internal/domain/analytics"
)

// AnalyticsUsecase computes dashboards from the current place snapshot.
type AnalyticsUsecase interface {
	// Dashboard builds every metric and available chart.
	Dashboard(ctx context.Context) *analytics.Dashboard

	// Chart builds one chart by name. Unknown names yield ErrChartNotFound; a
	// nil spec means the chart has no data.
	Chart(ctx context.Context, name string) (*analytics.ChartSpec, error)
}
