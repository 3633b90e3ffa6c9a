package analytics

import (
	"time"

	"places/internal/domain/entity"
)

// Dashboard bundles every metric and chart computed from one snapshot.
type Dashboard struct {
	GeneratedAt    time.Time             `json:"generated_at"`
	Basic          *BasicMetrics         `json:"basic_metrics"`
	Time           *TimeMetrics          `json:"time_metrics"`
	Charts         map[string]*ChartSpec `json:"charts"`
	RecentActivity []*entity.Place       `json:"recent_activity"`
}

// BuildDashboard computes the full dashboard. Charts whose preconditions fail
// are left out of Charts.
func BuildDashboard(table *entity.PlaceTable, now time.Time, recentLimit int, opts ChartOptions) *Dashboard {
	dashboard := &Dashboard{
		GeneratedAt:    now.UTC(),
		Basic:          CalculateBasicMetrics(table),
		Time:           CalculateTimeMetrics(table, now),
		Charts:         make(map[string]*ChartSpec, len(ChartNames)),
		RecentActivity: RecentActivity(table, recentLimit),
	}

	for _, name := range ChartNames {
		if spec, _ := Chart(name, table, opts); spec != nil {
			dashboard.Charts[name] = spec
		}
	}

	return dashboard
}
