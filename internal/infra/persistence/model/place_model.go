package model

import (
	"time"
)

// PlaceModel is the GORM-specific struct for the 'places' table.
// Range and non-empty checks are declared on the columns; the pincode format
// check and the updated_at trigger are PostgreSQL-only and added by Migrate.
type PlaceModel struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Latitude  float64   `gorm:"type:double precision;not null;index:idx_places_coordinates,priority:1;check:chk_places_latitude,latitude >= -90 AND latitude <= 90"`
	Longitude float64   `gorm:"type:double precision;not null;index:idx_places_coordinates,priority:2;check:chk_places_longitude,longitude >= -180 AND longitude <= 180"`
	Types     string    `gorm:"type:varchar(255);not null;index:idx_places_types;check:chk_places_types,length(trim(types)) > 0"`
	Name      string    `gorm:"type:varchar(255);not null;index:idx_places_name;check:chk_places_name,length(trim(name)) > 0"`
	Address   string    `gorm:"type:text;not null;check:chk_places_address,length(trim(address)) > 0"`
	Pincode   string    `gorm:"type:varchar(9);not null;index:idx_places_pincode"`
	Rating    float64   `gorm:"type:double precision;not null;check:chk_places_rating,rating >= 0 AND rating <= 5"`
	Followers float64   `gorm:"type:double precision;not null;check:chk_places_followers,followers >= 0"`
	Country   string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false;index:idx_places_created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}
