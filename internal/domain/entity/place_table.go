package entity

// Column names one field of the canonical place schema.
type Column string

const (
	ColumnID        Column = "id"
	ColumnLatitude  Column = "latitude"
	ColumnLongitude Column = "longitude"
	ColumnTypes     Column = "types"
	ColumnName      Column = "name"
	ColumnAddress   Column = "address"
	ColumnPincode   Column = "pincode"
	ColumnRating    Column = "rating"
	ColumnFollowers Column = "followers"
	ColumnCountry   Column = "country"
	ColumnCreatedAt Column = "created_at"
	ColumnUpdatedAt Column = "updated_at"
)

func (c Column) String() string {
	return string(c)
}

// Columns is the canonical column order used by the database scan and the Excel mirror.
var Columns = []Column{
	ColumnID, ColumnLatitude, ColumnLongitude, ColumnTypes, ColumnName, ColumnAddress,
	ColumnPincode, ColumnRating, ColumnFollowers, ColumnCountry, ColumnCreatedAt, ColumnUpdatedAt,
}

// OptionalColumns may be absent from a snapshot; aggregations must tolerate that.
var OptionalColumns = []Column{ColumnRating, ColumnFollowers, ColumnCountry, ColumnPincode}

// ParseColumn maps a header name to a canonical column.
func ParseColumn(name string) (Column, bool) {
	for _, column := range Columns {
		if string(column) == name {
			return column, true
		}
	}

	return "", false
}

// ColumnSet records which canonical columns a snapshot actually carried.
type ColumnSet map[Column]bool

// AllColumns returns a set containing every canonical column.
func AllColumns() ColumnSet {
	set := make(ColumnSet, len(Columns))
	for _, column := range Columns {
		set[column] = true
	}

	return set
}

// Has reports whether column is present.
func (s ColumnSet) Has(column Column) bool {
	return s[column]
}

// PlaceTable is an in-memory tabular snapshot of places.
type PlaceTable struct {
	Rows    []*Place
	Columns ColumnSet
	// CoercionFailures counts cells per column that could not be parsed and were defaulted.
	CoercionFailures map[Column]int
}

// NewPlaceTable builds a table with every column present.
func NewPlaceTable(rows []*Place) *PlaceTable {
	if rows == nil {
		rows = []*Place{}
	}

	return &PlaceTable{
		Rows:             rows,
		Columns:          AllColumns(),
		CoercionFailures: map[Column]int{},
	}
}

// EmptyPlaceTable returns a correctly shaped table with no rows.
func EmptyPlaceTable() *PlaceTable {
	return NewPlaceTable(nil)
}

// Len returns the number of rows; nil tables are empty.
func (t *PlaceTable) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Rows)
}

// IsEmpty reports whether the table has no rows.
func (t *PlaceTable) IsEmpty() bool {
	return t.Len() == 0
}

// HasColumn reports whether the snapshot carried column.
func (t *PlaceTable) HasColumn(column Column) bool {
	if t == nil || t.Columns == nil {
		return false
	}

	return t.Columns.Has(column)
}

// Clone deep-copies the table.
func (t *PlaceTable) Clone() *PlaceTable {
	if t == nil {
		return EmptyPlaceTable()
	}

	rows := make([]*Place, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, row.Clone())
	}

	columns := make(ColumnSet, len(t.Columns))
	for column, present := range t.Columns {
		columns[column] = present
	}

	failures := make(map[Column]int, len(t.CoercionFailures))
	for column, count := range t.CoercionFailures {
		failures[column] = count
	}

	return &PlaceTable{Rows: rows, Columns: columns, CoercionFailures: failures}
}

// FindByID returns the row with the given id, or nil.
func (t *PlaceTable) FindByID(id string) *Place {
	if t == nil {
		return nil
	}
	for _, row := range t.Rows {
		if row.ID == id {
			return row
		}
	}

	return nil
}
