// Package analytics computes read-only metrics and chart specifications over
// an in-memory snapshot of places. Nothing here returns an error: missing
// columns and unparsable values degrade to zero values.
package analytics

import (
	"slices"
	"strings"

	"places/internal/domain/entity"
)

const notAvailable = "N/A"

// ValueCount is one entry of a frequency table.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// valueCounts returns the frequencies of the non-empty values, most frequent
// first. Ties keep first-occurrence order.
func valueCounts(values []string) []ValueCount {
	index := make(map[string]int)
	counts := make([]ValueCount, 0)
	for _, value := range values {
		if value == "" {
			continue
		}
		if i, ok := index[value]; ok {
			counts[i].Count++

			continue
		}
		index[value] = len(counts)
		counts = append(counts, ValueCount{Value: value, Count: 1})
	}

	slices.SortStableFunc(counts, func(a, b ValueCount) int {
		return b.Count - a.Count
	})

	return counts
}

func mode(values []string) string {
	counts := valueCounts(values)
	if len(counts) == 0 {
		return notAvailable
	}

	return counts[0].Value
}

func topN(counts []ValueCount, n int) []ValueCount {
	if len(counts) > n {
		return counts[:n]
	}

	return counts
}

// columnValues extracts the string form of a text column, or nil when the
// snapshot does not carry it.
func columnValues(table *entity.PlaceTable, column entity.Column) []string {
	if !table.HasColumn(column) {
		return nil
	}

	values := make([]string, 0, table.Len())
	for _, row := range table.Rows {
		values = append(values, strings.TrimSpace(textCell(row, column)))
	}

	return values
}

func textCell(p *entity.Place, column entity.Column) string {
	switch column {
	case entity.ColumnID:
		return p.ID
	case entity.ColumnTypes:
		return p.Types
	case entity.ColumnName:
		return p.Name
	case entity.ColumnAddress:
		return p.Address
	case entity.ColumnPincode:
		return p.Pincode
	case entity.ColumnCountry:
		return p.Country
	default:
		return ""
	}
}

// cellPresent reports whether the row has a non-null value in column.
// Numeric columns are null when the source cell was blank or unparsable; text
// and time columns need a non-blank value.
func cellPresent(table *entity.PlaceTable, p *entity.Place, column entity.Column) bool {
	if !table.HasColumn(column) {
		return false
	}

	switch column {
	case entity.ColumnLatitude, entity.ColumnLongitude, entity.ColumnRating, entity.ColumnFollowers:
		return !p.IsBlank(column)
	case entity.ColumnCreatedAt:
		return !p.CreatedAt.IsZero()
	case entity.ColumnUpdatedAt:
		return !p.UpdatedAt.IsZero()
	default:
		return strings.TrimSpace(textCell(p, column)) != ""
	}
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}

	return float64(part) / float64(whole) * 100
}

func validCoordinateRows(table *entity.PlaceTable) []*entity.Place {
	if !table.HasColumn(entity.ColumnLatitude) || !table.HasColumn(entity.ColumnLongitude) {
		return nil
	}

	rows := make([]*entity.Place, 0, table.Len())
	for _, row := range table.Rows {
		if row.HasCoordinates() && row.Coordinates().IsValid() {
			rows = append(rows, row)
		}
	}

	return rows
}
