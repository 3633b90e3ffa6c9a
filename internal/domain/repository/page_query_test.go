package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePageQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        PageQuery
		expected     PageQuery
		wantRejected bool
	}{
		{
			name:     "defaults",
			input:    PageQuery{},
			expected: PageQuery{Page: 1, PageSize: 1, SortBy: "id", SortOrder: "ASC"},
		},
		{
			name:     "passes valid values",
			input:    PageQuery{Page: 3, PageSize: 25, SortBy: "name", SortOrder: "desc", Search: "  cafe "},
			expected: PageQuery{Page: 3, PageSize: 25, SortBy: "name", SortOrder: "DESC", Search: "cafe"},
		},
		{
			name:     "clamps oversized page size",
			input:    PageQuery{Page: -4, PageSize: 5000, SortBy: "created_at", SortOrder: "asc"},
			expected: PageQuery{Page: 1, PageSize: MaxPageSize, SortBy: "created_at", SortOrder: "ASC"},
		},
		{
			name:         "rejects unknown sort column",
			input:        PageQuery{Page: 1, PageSize: 10, SortBy: "rating; DROP TABLE places", SortOrder: "sideways"},
			expected:     PageQuery{Page: 1, PageSize: 10, SortBy: "id", SortOrder: "ASC"},
			wantRejected: true,
		},
		{
			name:     "trims type filter",
			input:    PageQuery{Page: 2, PageSize: 10, Type: " cafe "},
			expected: PageQuery{Page: 2, PageSize: 10, SortBy: "id", SortOrder: "ASC", Type: "cafe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, rejected := NormalizePageQuery(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.wantRejected, rejected)
		})
	}
}

func TestLastPageAndClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, LastPage(0, 10))
	assert.Equal(t, 1, LastPage(10, 10))
	assert.Equal(t, 2, LastPage(11, 10))
	assert.Equal(t, 3, LastPage(25, 10))
	assert.Equal(t, 1, LastPage(5, 0))

	assert.Equal(t, 3, ClampPage(99, 25, 10))
	assert.Equal(t, 1, ClampPage(0, 25, 10))
	assert.Equal(t, 2, ClampPage(2, 25, 10))

	assert.Equal(t, 20, PageQuery{Page: 3, PageSize: 10}.Offset())
}

func TestPlaceUpdate(t *testing.T) {
	t.Parallel()

	update := &PlaceUpdate{}
	assert.True(t, update.IsEmpty())

	name := "New Name"
	rating := 4.5
	update = &PlaceUpdate{Name: &name, Rating: &rating}
	assert.False(t, update.IsEmpty())
}
