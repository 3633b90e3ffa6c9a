package analytics

import (
	"places/internal/domain/entity"
)

// ColumnCompleteness reports how many rows carry a value in one column.
type ColumnCompleteness struct {
	CompletenessPercentage float64 `json:"completeness_percentage"`
	NonNullCount           int     `json:"non_null_count"`
	NullCount              int     `json:"null_count"`
}

// DataQuality reports completeness, validity and duplication of a snapshot.
type DataQuality struct {
	Completeness        float64                               `json:"completeness"`
	ColumnCompleteness  map[entity.Column]*ColumnCompleteness `json:"column_completeness"`
	OverallQualityScore float64                               `json:"overall_quality_score"`
	ValidCoordinates    int                                   `json:"valid_coordinates"`
	CoordinateValidity  float64                               `json:"coordinate_validity"`
	DuplicateCount      int                                   `json:"duplicate_count"`
	IDDuplicates        int                                   `json:"id_duplicates"`
	Uniqueness          float64                               `json:"uniqueness"`
	DataTypeIssues      map[entity.Column]int                 `json:"data_type_issues"`
	ValidCreatedDates   int                                   `json:"valid_created_dates"`
	ValidUpdatedDates   int                                   `json:"valid_updated_dates"`
}

// CalculateDataQuality returns nil for an empty table.
func CalculateDataQuality(table *entity.PlaceTable) *DataQuality {
	if table.IsEmpty() {
		return nil
	}

	total := table.Len()
	quality := &DataQuality{
		ColumnCompleteness: make(map[entity.Column]*ColumnCompleteness, len(entity.Columns)),
		DataTypeIssues:     map[entity.Column]int{},
	}

	carried, filled := 0, 0
	scoreSum := 0.0
	for _, column := range entity.Columns {
		nonNull := 0
		for _, row := range table.Rows {
			if cellPresent(table, row, column) {
				nonNull++
			}
		}
		completeness := percentage(nonNull, total)
		quality.ColumnCompleteness[column] = &ColumnCompleteness{
			CompletenessPercentage: completeness,
			NonNullCount:           nonNull,
			NullCount:              total - nonNull,
		}
		scoreSum += completeness

		if table.HasColumn(column) {
			carried += total
			filled += nonNull
		}
	}
	quality.Completeness = percentage(filled, carried)
	quality.OverallQualityScore = scoreSum / float64(len(entity.Columns))

	quality.ValidCoordinates = len(validCoordinateRows(table))
	quality.CoordinateValidity = percentage(quality.ValidCoordinates, total)

	quality.DuplicateCount = countDuplicates(table.Rows, func(p *entity.Place) string {
		return p.Name + "\x00" + p.Address
	})
	quality.IDDuplicates = countDuplicates(table.Rows, func(p *entity.Place) string {
		return p.ID
	})
	quality.Uniqueness = percentage(total-quality.DuplicateCount, total)

	for _, column := range []entity.Column{entity.ColumnLatitude, entity.ColumnLongitude, entity.ColumnRating, entity.ColumnFollowers} {
		if table.HasColumn(column) {
			quality.DataTypeIssues[column] = table.CoercionFailures[column]
		}
	}

	quality.ValidCreatedDates = quality.ColumnCompleteness[entity.ColumnCreatedAt].NonNullCount
	quality.ValidUpdatedDates = quality.ColumnCompleteness[entity.ColumnUpdatedAt].NonNullCount

	return quality
}

// countDuplicates counts rows whose key was already seen.
func countDuplicates(rows []*entity.Place, key func(*entity.Place) string) int {
	seen := make(map[string]struct{}, len(rows))
	duplicates := 0
	for _, row := range rows {
		k := key(row)
		if _, ok := seen[k]; ok {
			duplicates++

			continue
		}
		seen[k] = struct{}{}
	}

	return duplicates
}
