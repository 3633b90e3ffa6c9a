package analytics

import (
	"math"
	"slices"

	"github.com/paulmach/orb"

	"places/internal/domain/entity"
)

// CoordinateSpread is the bounding box extent of all coordinates in degrees.
type CoordinateSpread struct {
	LatRange         float64 `json:"lat_range"`
	LonRange         float64 `json:"lon_range"`
	GeographicSpread float64 `json:"geographic_spread"`
}

// BasicMetrics summarises a snapshot.
type BasicMetrics struct {
	TotalPlaces                 int              `json:"total_places"`
	UniqueTypes                 int              `json:"unique_types"`
	MostCommonType              string           `json:"most_common_type"`
	AvgRating                   float64          `json:"avg_rating"`
	MinRating                   float64          `json:"min_rating"`
	MaxRating                   float64          `json:"max_rating"`
	TotalFollowers              int64            `json:"total_followers"`
	AvgFollowers                float64          `json:"avg_followers"`
	MaxFollowers                int64            `json:"max_followers"`
	UniqueCountries             int              `json:"unique_countries"`
	MostCommonCountry           string           `json:"most_common_country"`
	UniquePincodes              int              `json:"unique_pincodes"`
	MostCommonPincode           string           `json:"most_common_pincode"`
	PincodeCoverage             float64          `json:"pincode_coverage"`
	AddressCompleteness         float64          `json:"address_completeness"`
	PlacesWithAddress           int              `json:"places_with_address"`
	AvgLatitude                 float64          `json:"avg_latitude"`
	AvgLongitude                float64          `json:"avg_longitude"`
	CoordinateSpread            CoordinateSpread `json:"coordinate_spread"`
	AverageDistanceFromCenterKm float64          `json:"average_distance_from_center_km"`
	DataQuality                 *DataQuality     `json:"data_quality,omitempty"`
}

func emptyBasicMetrics() *BasicMetrics {
	return &BasicMetrics{
		MostCommonType:    notAvailable,
		MostCommonCountry: notAvailable,
		MostCommonPincode: notAvailable,
	}
}

// CalculateBasicMetrics computes counts, averages and spreads. An empty table
// yields zeroed metrics with "N/A" modes.
func CalculateBasicMetrics(table *entity.PlaceTable) *BasicMetrics {
	if table.IsEmpty() {
		return emptyBasicMetrics()
	}

	total := table.Len()
	metrics := emptyBasicMetrics()
	metrics.TotalPlaces = total

	if types := columnValues(table, entity.ColumnTypes); types != nil {
		counts := valueCounts(types)
		metrics.UniqueTypes = len(counts)
		metrics.MostCommonType = mode(types)
	}

	if table.HasColumn(entity.ColumnRating) {
		ratings := numericValues(table.Rows, entity.ColumnRating, func(p *entity.Place) float64 { return p.Rating })
		if len(ratings) > 0 {
			metrics.MinRating = slices.Min(ratings)
			metrics.MaxRating = slices.Max(ratings)
			metrics.AvgRating = sum(ratings) / float64(len(ratings))
		}
	}

	if table.HasColumn(entity.ColumnFollowers) {
		followers := numericValues(table.Rows, entity.ColumnFollowers, func(p *entity.Place) float64 { return p.Followers })
		if len(followers) > 0 {
			followerSum := sum(followers)
			metrics.TotalFollowers = int64(followerSum)
			metrics.AvgFollowers = followerSum / float64(len(followers))
			metrics.MaxFollowers = int64(slices.Max(followers))
		}
	}

	if countries := columnValues(table, entity.ColumnCountry); countries != nil {
		metrics.UniqueCountries = len(valueCounts(countries))
		metrics.MostCommonCountry = mode(countries)
	}

	if pincodes := columnValues(table, entity.ColumnPincode); pincodes != nil {
		counts := valueCounts(pincodes)
		covered := 0
		for _, c := range counts {
			covered += c.Count
		}
		metrics.UniquePincodes = len(counts)
		metrics.MostCommonPincode = mode(pincodes)
		metrics.PincodeCoverage = percentage(covered, total)
	}

	if table.HasColumn(entity.ColumnAddress) {
		withAddress := 0
		for _, row := range table.Rows {
			if cellPresent(table, row, entity.ColumnAddress) {
				withAddress++
			}
		}
		metrics.PlacesWithAddress = withAddress
		metrics.AddressCompleteness = percentage(withAddress, total)
	}

	if table.HasColumn(entity.ColumnLatitude) && table.HasColumn(entity.ColumnLongitude) {
		rows := make([]*entity.Place, 0, total)
		for _, row := range table.Rows {
			if row.HasCoordinates() {
				rows = append(rows, row)
			}
		}
		if len(rows) > 0 {
			fillCoordinateMetrics(metrics, rows)
		}
	}

	metrics.DataQuality = CalculateDataQuality(table)

	return metrics
}

// numericValues returns field for every row whose column is not blank.
func numericValues(rows []*entity.Place, column entity.Column, field func(*entity.Place) float64) []float64 {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		if !row.IsBlank(column) {
			values = append(values, field(row))
		}
	}

	return values
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}

	return total
}

func fillCoordinateMetrics(metrics *BasicMetrics, rows []*entity.Place) {
	points := make(orb.MultiPoint, 0, len(rows))
	latSum, lonSum := 0.0, 0.0
	for _, row := range rows {
		points = append(points, row.Coordinates().Point())
		latSum += row.Latitude
		lonSum += row.Longitude
	}

	n := float64(len(rows))
	metrics.AvgLatitude = latSum / n
	metrics.AvgLongitude = lonSum / n

	bound := points.Bound()
	latRange := bound.Top() - bound.Bottom()
	lonRange := bound.Right() - bound.Left()
	metrics.CoordinateSpread = CoordinateSpread{
		LatRange:         latRange,
		LonRange:         lonRange,
		GeographicSpread: math.Sqrt(latRange*latRange + lonRange*lonRange),
	}

	center := entity.Coordinates{Latitude: metrics.AvgLatitude, Longitude: metrics.AvgLongitude}
	if !center.IsValid() {
		return
	}

	distance := 0.0
	valid := 0
	for _, row := range rows {
		coords := row.Coordinates()
		if !coords.IsValid() {
			continue
		}
		distance += center.DistanceTo(coords)
		valid++
	}
	if valid > 0 {
		metrics.AverageDistanceFromCenterKm = distance / float64(valid)
	}
}
