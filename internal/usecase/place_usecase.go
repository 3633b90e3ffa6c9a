// Package usecase defines the application's business operations.
package usecase

import (
	"context"

	"places/internal/domain/entity"
	"places/internal/domain/repository"
	"places/internal/domain/service"
)

// AddPlaceInput represents the input for adding a new place. A blank ID is
// replaced by a generated UUID.
type AddPlaceInput struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Types     string  `json:"types"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Pincode   string  `json:"pincode"`
	Rating    float64 `json:"rating"`
	Followers float64 `json:"followers"`
	Country   string  `json:"country"`
}

// UpdatePlaceInput represents a partial update. Nil fields are left untouched.
type UpdatePlaceInput struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Types     *string  `json:"types,omitempty"`
	Name      *string  `json:"name,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Pincode   *string  `json:"pincode,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	Followers *float64 `json:"followers,omitempty"`
	Country   *string  `json:"country,omitempty"`
}

// PlacePage is one page of a listing. Page is the page actually served after
// clamping to the last page.
type PlacePage struct {
	Items      []*entity.Place `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int64           `json:"total"`
	TotalPages int             `json:"total_pages"`
}

// Mirror sync states reported by MirrorStatus.
const (
	SyncStatusSynced    = "synced"
	SyncStatusOutOfSync = "out_of_sync"
	SyncStatusUnknown   = "unknown"
)

// MirrorStatus extends the mirror statistics with a comparison against the database.
type MirrorStatus struct {
	*service.MirrorStatistics

	DatabaseCount    int64  `json:"database_count"`
	SyncStatus       string `json:"sync_status"`
	RecordDifference int64  `json:"record_difference"`
}

// PlaceUsecase is the fail-soft accessor of the place store. Its operations
// never return errors: failures are logged and reported as false, nil or an
// empty result.
type PlaceUsecase interface {
	AddPlace(ctx context.Context, input *AddPlaceInput) (*entity.Place, bool)
	UpdatePlace(ctx context.Context, id string, input *UpdatePlaceInput) (*entity.Place, bool)
	DeletePlace(ctx context.Context, id string) bool
	GetPlace(ctx context.Context, id string) *entity.Place
	PlaceExists(ctx context.Context, id string) bool

	// GetAllPlaces reads the mirror first when preferExcel is set and the
	// mirror is enabled, falling back to a full database scan.
	GetAllPlaces(ctx context.Context, preferExcel bool) *entity.PlaceTable

	GetPlacesPaginated(ctx context.Context, query repository.PageQuery) *PlacePage
	GetPlacesByTypePaginated(ctx context.Context, placeType string, query repository.PageQuery) *PlacePage

	// Mirror maintenance
	SyncMirror(ctx context.Context) bool
	ForceMirrorResync(ctx context.Context) bool
	MirrorStatistics(ctx context.Context) *MirrorStatus
}
