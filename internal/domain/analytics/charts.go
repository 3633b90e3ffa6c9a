package analytics

import (
	"sort"

	"places/internal/domain/entity"
)

// ChartKind is the rendering family of a chart.
type ChartKind string

const (
	ChartBar        ChartKind = "bar"
	ChartLine       ChartKind = "line"
	ChartScatterMap ChartKind = "scatter_map"
	ChartDensityMap ChartKind = "density_map"
)

// Chart names accepted by Chart.
const (
	ChartPlacesByType           = "places_by_type"
	ChartGeographicDistribution = "geographic_distribution"
	ChartAdditionTimeline       = "addition_timeline"
	ChartCoordinateHeatmap      = "coordinate_heatmap"
	ChartPincodeDistribution    = "pincode_distribution"
	ChartDataQuality            = "data_quality"
)

// ChartNames lists every chart in dashboard order.
var ChartNames = []string{
	ChartPlacesByType,
	ChartGeographicDistribution,
	ChartAdditionTimeline,
	ChartCoordinateHeatmap,
	ChartPincodeDistribution,
	ChartDataQuality,
}

const (
	typeChartLimit    = 10
	pincodeChartLimit = 15
	heatmapMinPoints  = 5
	heatmapRadius     = 10
	timelineDayFormat = "2006-01-02"
)

// ChartOptions carries presentation settings shared by all charts.
type ChartOptions struct {
	Height   int
	MapStyle string
	Zoom     float64
}

// MapPoint is one marker of a map chart.
type MapPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Types     string  `json:"types,omitempty"`
	Address   string  `json:"address,omitempty"`
	Pincode   string  `json:"pincode,omitempty"`
}

// ChartSpec is a renderer-agnostic description of a chart.
type ChartSpec struct {
	Name          string     `json:"name"`
	Kind          ChartKind  `json:"kind"`
	Title         string     `json:"title"`
	XLabel        string     `json:"x_label,omitempty"`
	YLabel        string     `json:"y_label,omitempty"`
	Orientation   string     `json:"orientation,omitempty"`
	Height        int        `json:"height"`
	ColorScale    string     `json:"color_scale,omitempty"`
	Labels        []string   `json:"labels,omitempty"`
	Values        []float64  `json:"values,omitempty"`
	Points        []MapPoint `json:"points,omitempty"`
	MapStyle      string     `json:"map_style,omitempty"`
	Zoom          float64    `json:"zoom,omitempty"`
	Radius        int        `json:"radius,omitempty"`
	ReferenceLine *float64   `json:"reference_line,omitempty"`
}

// Chart builds the named chart. The boolean is false for an unknown name; a
// nil spec with true means the chart has no data and should be omitted.
func Chart(name string, table *entity.PlaceTable, opts ChartOptions) (*ChartSpec, bool) {
	switch name {
	case ChartPlacesByType:
		return PlacesByTypeChart(table, opts), true
	case ChartGeographicDistribution:
		return GeographicDistributionMap(table, opts), true
	case ChartAdditionTimeline:
		return AdditionTimelineChart(table, opts), true
	case ChartCoordinateHeatmap:
		return CoordinateHeatmap(table, opts), true
	case ChartPincodeDistribution:
		return PincodeDistributionChart(table, opts), true
	case ChartDataQuality:
		return DataQualityChart(table, opts), true
	default:
		return nil, false
	}
}

func horizontalBar(name, title, yLabel, colorScale string, counts []ValueCount, opts ChartOptions) *ChartSpec {
	spec := &ChartSpec{
		Name:        name,
		Kind:        ChartBar,
		Title:       title,
		XLabel:      "Number of Places",
		YLabel:      yLabel,
		Orientation: "h",
		Height:      opts.Height,
		ColorScale:  colorScale,
		Labels:      make([]string, 0, len(counts)),
		Values:      make([]float64, 0, len(counts)),
	}
	for _, c := range counts {
		spec.Labels = append(spec.Labels, c.Value)
		spec.Values = append(spec.Values, float64(c.Count))
	}

	return spec
}

// PlacesByTypeChart is a horizontal bar of the ten most common types.
func PlacesByTypeChart(table *entity.PlaceTable, opts ChartOptions) *ChartSpec {
	counts := valueCounts(columnValues(table, entity.ColumnTypes))
	if len(counts) == 0 {
		return nil
	}

	return horizontalBar(ChartPlacesByType, "Places by Type (Top 10)", "Place Type", "viridis", topN(counts, typeChartLimit), opts)
}

// PincodeDistributionChart is a horizontal bar of the fifteen most common pincodes.
func PincodeDistributionChart(table *entity.PlaceTable, opts ChartOptions) *ChartSpec {
	counts := valueCounts(columnValues(table, entity.ColumnPincode))
	if len(counts) == 0 {
		return nil
	}

	return horizontalBar(ChartPincodeDistribution, "Places by Pincode (Top 15)", "Pincode", "plasma", topN(counts, pincodeChartLimit), opts)
}

func mapPoints(rows []*entity.Place) []MapPoint {
	points := make([]MapPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, MapPoint{
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			Name:      row.Name,
			Types:     row.Types,
			Address:   row.Address,
			Pincode:   row.Pincode,
		})
	}

	return points
}

// GeographicDistributionMap plots every place with valid coordinates.
func GeographicDistributionMap(table *entity.PlaceTable, opts ChartOptions) *ChartSpec {
	rows := validCoordinateRows(table)
	if len(rows) == 0 {
		return nil
	}

	return &ChartSpec{
		Name:     ChartGeographicDistribution,
		Kind:     ChartScatterMap,
		Title:    "Geographic Distribution of Places",
		Height:   opts.Height,
		Points:   mapPoints(rows),
		MapStyle: opts.MapStyle,
		Zoom:     opts.Zoom,
	}
}

// CoordinateHeatmap is a density map; it needs at least five valid coordinates.
func CoordinateHeatmap(table *entity.PlaceTable, opts ChartOptions) *ChartSpec {
	if table.Len() < heatmapMinPoints {
		return nil
	}
	rows := validCoordinateRows(table)
	if len(rows) < heatmapMinPoints {
		return nil
	}

	points := make([]MapPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, MapPoint{Latitude: row.Latitude, Longitude: row.Longitude})
	}

	return &ChartSpec{
		Name:     ChartCoordinateHeatmap,
		Kind:     ChartDensityMap,
		Title:    "Place Density Heatmap",
		Height:   opts.Height,
		Points:   points,
		MapStyle: opts.MapStyle,
		Zoom:     opts.Zoom,
		Radius:   heatmapRadius,
	}
}

// AdditionTimelineChart counts additions per UTC calendar day.
func AdditionTimelineChart(table *entity.PlaceTable, opts ChartOptions) *ChartSpec {
	times := createdTimes(table)
	if len(times) == 0 {
		return nil
	}

	perDay := make(map[string]int)
	for _, ts := range times {
		perDay[ts.Format(timelineDayFormat)]++
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	spec := &ChartSpec{
		Name:   ChartAdditionTimeline,
		Kind:   ChartLine,
		Title:  "Place Additions Over Time",
		XLabel: "Date",
		YLabel: "Places Added",
		Height: opts.Height,
		Labels: days,
		Values: make([]float64, 0, len(days)),
	}
	for _, day := range days {
		spec.Values = append(spec.Values, float64(perDay[day]))
	}

	return spec
}

// DataQualityChart plots completeness per canonical column with a 100% reference line.
func DataQualityChart(table *entity.PlaceTable, opts ChartOptions) *ChartSpec {
	quality := CalculateDataQuality(table)
	if quality == nil {
		return nil
	}

	full := 100.0
	spec := &ChartSpec{
		Name:          ChartDataQuality,
		Kind:          ChartBar,
		Title:         "Data Completeness by Column",
		XLabel:        "Column",
		YLabel:        "Completeness (%)",
		Height:        opts.Height,
		ColorScale:    "RdYlGn",
		Labels:        make([]string, 0, len(entity.Columns)),
		Values:        make([]float64, 0, len(entity.Columns)),
		ReferenceLine: &full,
	}
	for _, column := range entity.Columns {
		spec.Labels = append(spec.Labels, column.String())
		spec.Values = append(spec.Values, quality.ColumnCompleteness[column].CompletenessPercentage)
	}

	return spec
}
