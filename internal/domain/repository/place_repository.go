// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"places/internal/domain/entity"
	"places/internal/errors"
)

// Domain-specific errors for place persistence.
var (
	// ErrPlaceNotFound is returned when no place has the requested id.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrPlaceAlreadyExists is returned when inserting a place whose id is taken.
	ErrPlaceAlreadyExists = errors.New("place already exists")
)

// PlaceUpdate carries the columns of a partial update. Nil fields are left untouched.
type PlaceUpdate struct {
	Latitude  *float64
	Longitude *float64
	Types     *string
	Name      *string
	Address   *string
	Pincode   *string
	Rating    *float64
	Followers *float64
	Country   *string
	UpdatedAt time.Time
}

// IsEmpty reports whether the update changes no business column.
func (u *PlaceUpdate) IsEmpty() bool {
	return u.Latitude == nil && u.Longitude == nil && u.Types == nil && u.Name == nil &&
		u.Address == nil && u.Pincode == nil && u.Rating == nil && u.Followers == nil && u.Country == nil
}

// Apply copies the supplied fields onto place.
func (u *PlaceUpdate) Apply(place *entity.Place) {
	if u.Latitude != nil {
		place.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		place.Longitude = *u.Longitude
	}
	if u.Types != nil {
		place.Types = *u.Types
	}
	if u.Name != nil {
		place.Name = *u.Name
	}
	if u.Address != nil {
		place.Address = *u.Address
	}
	if u.Pincode != nil {
		place.Pincode = *u.Pincode
	}
	if u.Rating != nil {
		place.Rating = *u.Rating
	}
	if u.Followers != nil {
		place.Followers = *u.Followers
	}
	if u.Country != nil {
		place.Country = *u.Country
	}
	if !u.UpdatedAt.IsZero() {
		place.UpdatedAt = u.UpdatedAt
	}
}

// PlaceRepository defines the interface for place-related database operations.
type PlaceRepository interface {
	// CreatePlace persists a new place. Returns ErrPlaceAlreadyExists on an id collision.
	CreatePlace(ctx context.Context, place *entity.Place) error

	// FindPlaceByID retrieves a place by its id. Returns ErrPlaceNotFound if absent.
	FindPlaceByID(ctx context.Context, id string) (*entity.Place, error)

	// PlaceExists reports whether a place with the id is stored.
	PlaceExists(ctx context.Context, id string) (bool, error)

	// UpdatePlace applies a partial update. Returns ErrPlaceNotFound if no row matched.
	UpdatePlace(ctx context.Context, id string, update *PlaceUpdate) error

	// DeletePlace removes a place. Returns ErrPlaceNotFound if no row matched.
	DeletePlace(ctx context.Context, id string) error

	// FindAllPlaces returns every place ordered by id.
	FindAllPlaces(ctx context.Context) ([]*entity.Place, error)

	// FindPlacesPage returns one page of places and the total matching count.
	// The query must already be normalized; see NormalizePageQuery.
	FindPlacesPage(ctx context.Context, query PageQuery) ([]*entity.Place, int64, error)

	// CountPlaces returns the number of stored places.
	CountPlaces(ctx context.Context) (int64, error)
}
