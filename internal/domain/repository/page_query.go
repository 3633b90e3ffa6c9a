package repository

import "strings"

const (
	// MaxPageSize caps the rows returned by one page.
	MaxPageSize = 1000
	// DefaultSortColumn is used when the requested sort column is not allowed.
	DefaultSortColumn = "id"

	SortOrderAsc  = "ASC"
	SortOrderDesc = "DESC"
)

// AllowedSortColumns is the allow-list for ORDER BY. Anything else falls back to DefaultSortColumn.
var AllowedSortColumns = map[string]bool{
	"id":         true,
	"name":       true,
	"types":      true,
	"address":    true,
	"latitude":   true,
	"longitude":  true,
	"pincode":    true,
	"created_at": true,
	"updated_at": true,
}

// SearchColumns are matched, case-insensitively and OR-ed, by a search term.
var SearchColumns = []string{"name", "types", "address", "pincode"}

// PageQuery describes one page of a listing.
type PageQuery struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	Search    string
	// Type restricts the listing to rows whose types column equals it exactly.
	Type string
}

// Offset returns the row offset of the page.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// NormalizePageQuery clamps page and size, upper-cases the sort order and
// checks the sort column against AllowedSortColumns. The second return value
// reports whether the requested sort column was rejected.
func NormalizePageQuery(q PageQuery) (PageQuery, bool) {
	if q.Page < 1 {
		q.Page = 1
	}
	q.PageSize = min(max(q.PageSize, 1), MaxPageSize)

	order := strings.ToUpper(strings.TrimSpace(q.SortOrder))
	if order != SortOrderAsc && order != SortOrderDesc {
		order = SortOrderAsc
	}
	q.SortOrder = order

	rejected := false
	sortBy := strings.TrimSpace(q.SortBy)
	switch {
	case sortBy == "":
		sortBy = DefaultSortColumn
	case !AllowedSortColumns[sortBy]:
		sortBy = DefaultSortColumn
		rejected = true
	}
	q.SortBy = sortBy

	q.Search = strings.TrimSpace(q.Search)
	q.Type = strings.TrimSpace(q.Type)

	return q, rejected
}

// LastPage returns the number of pages needed for total rows, at least 1.
func LastPage(total int64, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 1
	}

	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// ClampPage keeps page inside [1, LastPage(total, pageSize)].
func ClampPage(page int, total int64, pageSize int) int {
	return min(max(page, 1), LastPage(total, pageSize))
}
