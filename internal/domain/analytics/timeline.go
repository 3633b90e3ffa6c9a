package analytics

import (
	"slices"
	"time"

	"places/internal/domain/entity"
)

const (
	// RecentWindow is the look-back period for recent additions.
	RecentWindow = 30 * 24 * time.Hour

	errNoTimestamps = "No timestamp data available"
)

// TimeMetrics describes when places were added. Error is set instead of the
// other fields when the snapshot has no usable timestamps.
type TimeMetrics struct {
	RecentAdditions   int     `json:"recent_additions"`
	DailyAdditionRate float64 `json:"daily_addition_rate"`
	PeakHour          int     `json:"peak_hour"`
	PeakDay           string  `json:"peak_day"`
	Error             string  `json:"error,omitempty"`
}

func createdTimes(table *entity.PlaceTable) []time.Time {
	if !table.HasColumn(entity.ColumnCreatedAt) {
		return nil
	}

	times := make([]time.Time, 0, table.Len())
	for _, row := range table.Rows {
		if !row.CreatedAt.IsZero() {
			times = append(times, row.CreatedAt.UTC())
		}
	}

	return times
}

// CalculateTimeMetrics evaluates creation timestamps relative to now.
func CalculateTimeMetrics(table *entity.PlaceTable, now time.Time) *TimeMetrics {
	times := createdTimes(table)
	if len(times) == 0 {
		return &TimeMetrics{Error: errNoTimestamps}
	}

	metrics := &TimeMetrics{}

	threshold := now.UTC().Add(-RecentWindow)
	earliest, latest := times[0], times[0]
	hours := make([]int, 24)
	days := make(map[time.Weekday]int, 7)
	for _, ts := range times {
		if !ts.Before(threshold) {
			metrics.RecentAdditions++
		}
		if ts.Before(earliest) {
			earliest = ts
		}
		if ts.After(latest) {
			latest = ts
		}
		hours[ts.Hour()]++
		days[ts.Weekday()]++
	}

	if span := int(latest.Sub(earliest).Hours() / 24); len(times) > 1 && span > 0 {
		metrics.DailyAdditionRate = float64(len(times)) / float64(span)
	}

	for hour, count := range hours {
		if count > hours[metrics.PeakHour] {
			metrics.PeakHour = hour
		}
	}

	// Ties resolve alphabetically by day name.
	names := make([]string, 0, len(days))
	counts := make(map[string]int, len(days))
	for day, count := range days {
		names = append(names, day.String())
		counts[day.String()] = count
	}
	slices.Sort(names)
	for _, name := range names {
		if metrics.PeakDay == "" || counts[name] > counts[metrics.PeakDay] {
			metrics.PeakDay = name
		}
	}

	return metrics
}

// RecentActivity returns up to limit places, newest first. Rows without a
// creation time are ignored.
func RecentActivity(table *entity.PlaceTable, limit int) []*entity.Place {
	if limit <= 0 || !table.HasColumn(entity.ColumnCreatedAt) {
		return []*entity.Place{}
	}

	rows := make([]*entity.Place, 0, table.Len())
	for _, row := range table.Rows {
		if !row.CreatedAt.IsZero() {
			rows = append(rows, row.Clone())
		}
	}

	slices.SortStableFunc(rows, func(a, b *entity.Place) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}

	return rows
}
