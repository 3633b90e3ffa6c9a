package excel

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"places/internal/domain/entity"
	"places/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	workbookExt         = ".xlsx"
	workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	defaultSheetName    = "Sheet1"

	// cellTimeLayout is timezone-naive; stored values are UTC wall clock.
	cellTimeLayout = "2006-01-02 15:04:05.999999"
	maxColumnWidth = 50
)

var cellTimeLayouts = []string{
	cellTimeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04",
	time.DateOnly,
}

// writeWorkbook replaces the workbook at path with table. The file is written
// next to its destination and renamed into place.
func writeWorkbook(path, sheet string, table *entity.PlaceTable) error {
	columns := presentColumns(table)

	f := excelize.NewFile()
	defer f.Close()

	if sheet != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheet); err != nil {
			return errors.Wrap(err, "failed to name sheet")
		}
	}

	widths := make([]int, len(columns))
	header := make([]any, len(columns))
	for i, column := range columns {
		header[i] = column.String()
		widths[i] = utf8.RuneCountInString(column.String())
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write header row")
	}

	for r, place := range table.Rows {
		row := make([]any, len(columns))
		for i, column := range columns {
			row[i] = cellValue(place, column)
			widths[i] = max(widths[i], utf8.RuneCountInString(cellText(row[i])))
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return errors.Wrap(err, "failed to address row")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write row %d", r+2)
		}
	}

	if err := formatSheet(f, sheet, widths); err != nil {
		return err
	}

	return saveAtomically(f, path)
}

func formatSheet(f *excelize.File, sheet string, widths []int) error {
	if len(widths) == 0 {
		return nil
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "failed to create header style")
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(widths), 1)
	if err != nil {
		return errors.Wrap(err, "failed to address header")
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, bold); err != nil {
		return errors.Wrap(err, "failed to style header")
	}

	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.Wrap(err, "failed to name column")
		}
		if err := f.SetColWidth(sheet, name, name, float64(min(width+2, maxColumnWidth))); err != nil {
			return errors.Wrap(err, "failed to set column width")
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return errors.Wrap(err, "failed to freeze header")
	}

	return nil
}

func saveAtomically(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".~"+strings.TrimSuffix(filepath.Base(path), workbookExt)+"-*"+workbookExt)
	if err != nil {
		return errors.Wrap(err, "failed to create temporary workbook")
	}
	tmpName := tmp.Name()

	if err := f.Write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return errors.Wrap(err, "failed to write workbook")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return errors.Wrap(err, "failed to flush workbook")
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)

		return errors.Wrapf(err, "failed to replace workbook %s", path)
	}

	return nil
}

// presentColumns returns the table's columns in canonical order.
func presentColumns(table *entity.PlaceTable) []entity.Column {
	columns := make([]entity.Column, 0, len(entity.Columns))
	for _, column := range entity.Columns {
		if table.HasColumn(column) {
			columns = append(columns, column)
		}
	}

	return columns
}

func cellValue(place *entity.Place, column entity.Column) any {
	if place.IsBlank(column) {
		return nil
	}

	switch column {
	case entity.ColumnID:
		return place.ID
	case entity.ColumnLatitude:
		return place.Latitude
	case entity.ColumnLongitude:
		return place.Longitude
	case entity.ColumnTypes:
		return place.Types
	case entity.ColumnName:
		return place.Name
	case entity.ColumnAddress:
		return place.Address
	case entity.ColumnPincode:
		return place.Pincode
	case entity.ColumnRating:
		return place.Rating
	case entity.ColumnFollowers:
		return place.Followers
	case entity.ColumnCountry:
		return place.Country
	case entity.ColumnCreatedAt:
		return timeCell(place.CreatedAt)
	case entity.ColumnUpdatedAt:
		return timeCell(place.UpdatedAt)
	default:
		return nil
	}
}

func timeCell(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t.UTC().Format(cellTimeLayout)
}

func cellText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// readWorkbook loads the sheet into a table. Unknown headers are ignored and
// absent canonical columns are left out of table.Columns. A missing sheet
// falls back to the first sheet of the workbook.
func readWorkbook(path, sheet string) (*entity.PlaceTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open workbook %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return entity.EmptyPlaceTable(), nil
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	if len(rows) == 0 {
		return entity.EmptyPlaceTable(), nil
	}

	return parseRows(rows), nil
}

func parseRows(rows [][]string) *entity.PlaceTable {
	table := &entity.PlaceTable{
		Rows:             []*entity.Place{},
		Columns:          entity.ColumnSet{},
		CoercionFailures: map[entity.Column]int{},
	}

	header := make([]entity.Column, len(rows[0]))
	for i, name := range rows[0] {
		column, ok := entity.ParseColumn(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			continue
		}
		header[i] = column
		table.Columns[column] = true
	}

	for _, cells := range rows[1:] {
		if isBlankRow(cells) {
			continue
		}

		place := &entity.Place{}
		for i, column := range header {
			if column == "" {
				continue
			}
			value := ""
			if i < len(cells) {
				value = strings.TrimSpace(cells[i])
			}
			ok := setCell(place, column, value)
			if !ok {
				table.CoercionFailures[column]++
			}
			if numericColumns[column] && (value == "" || !ok) {
				place.MarkBlank(column)
			}
		}
		table.Rows = append(table.Rows, place)
	}

	return table
}

var numericColumns = map[entity.Column]bool{
	entity.ColumnLatitude:  true,
	entity.ColumnLongitude: true,
	entity.ColumnRating:    true,
	entity.ColumnFollowers: true,
}

func isBlankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// setCell parses value into the place field. It reports false when a non-empty
// value could not be parsed; the field then keeps its zero value.
func setCell(place *entity.Place, column entity.Column, value string) bool {
	switch column {
	case entity.ColumnID:
		place.ID = value
	case entity.ColumnPincode:
		place.Pincode = integerText(value)
	case entity.ColumnTypes:
		place.Types = value
	case entity.ColumnName:
		place.Name = value
	case entity.ColumnAddress:
		place.Address = value
	case entity.ColumnCountry:
		place.Country = value
	case entity.ColumnLatitude:
		return parseFloatCell(value, &place.Latitude)
	case entity.ColumnLongitude:
		return parseFloatCell(value, &place.Longitude)
	case entity.ColumnRating:
		return parseFloatCell(value, &place.Rating)
	case entity.ColumnFollowers:
		return parseFloatCell(value, &place.Followers)
	case entity.ColumnCreatedAt:
		return parseTimeCell(value, &place.CreatedAt)
	case entity.ColumnUpdatedAt:
		return parseTimeCell(value, &place.UpdatedAt)
	}

	return true
}

// integerText turns numeric cells such as "560001.0" back into "560001".
func integerText(value string) string {
	if value == "" || !strings.Contains(value, ".") {
		return value
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1e15 {
		return value
	}

	return strconv.FormatInt(int64(f), 10)
}

func parseFloatCell(value string, dst *float64) bool {
	if value == "" {
		return true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	*dst = f

	return true
}

// parseTimeCell accepts the layouts this package writes, ISO timestamps and
// Excel serial dates.
func parseTimeCell(value string, dst *time.Time) bool {
	if value == "" {
		return true
	}
	for _, layout := range cellTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			*dst = t.UTC().Truncate(time.Microsecond)

			return true
		}
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			*dst = t.UTC().Truncate(time.Microsecond)

			return true
		}
	}

	return false
}
