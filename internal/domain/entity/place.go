// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

const (
	// DefaultCountry is stored when a place is created without a country.
	DefaultCountry = "Unknown"

	// MinRating and MaxRating bound the rating column.
	MinRating = 0.0
	MaxRating = 5.0
)

// Place is the single domain entity: a point of interest with location,
// descriptive and quality fields.
type Place struct {
	ID        string    `json:"id"`         // Opaque identifier, stable across the database and the Excel mirror.
	Latitude  float64   `json:"latitude"`   // Geographic latitude in [-90, 90].
	Longitude float64   `json:"longitude"`  // Geographic longitude in [-180, 180].
	Types     string    `json:"types"`      // Comma-joined type tags, e.g. "cafe, restaurant".
	Name      string    `json:"name"`       // Display name.
	Address   string    `json:"address"`    // Full street address.
	Pincode   string    `json:"pincode"`    // Postal code, digits only.
	Rating    float64   `json:"rating"`     // Average rating in [0, 5].
	Followers float64   `json:"followers"`  // Follower count, never negative.
	Country   string    `json:"country"`    // Country name, "Unknown" when not provided.
	CreatedAt time.Time `json:"created_at"` // UTC creation timestamp.
	UpdatedAt time.Time `json:"updated_at"` // UTC timestamp of the last mutation.

	// Blank marks numeric columns whose source cell was empty or unparsable.
	// The matching field holds zero and must not be aggregated.
	Blank ColumnSet `json:"-"`
}

// Clone returns a copy of the place that shares no memory with the receiver.
func (p *Place) Clone() *Place {
	if p == nil {
		return nil
	}
	cloned := *p
	if p.Blank != nil {
		cloned.Blank = make(ColumnSet, len(p.Blank))
		for column, blank := range p.Blank {
			cloned.Blank[column] = blank
		}
	}

	return &cloned
}

// MarkBlank records that column had no usable value in the source snapshot.
func (p *Place) MarkBlank(column Column) {
	if p.Blank == nil {
		p.Blank = ColumnSet{}
	}
	p.Blank[column] = true
}

// IsBlank reports whether column had no usable value in the source snapshot.
func (p *Place) IsBlank(column Column) bool {
	return p.Blank.Has(column)
}

// HasCoordinates reports whether both latitude and longitude carry values.
func (p *Place) HasCoordinates() bool {
	return !p.IsBlank(ColumnLatitude) && !p.IsBlank(ColumnLongitude)
}

// Coordinates returns the geographic position of the place.
func (p *Place) Coordinates() Coordinates {
	return Coordinates{Latitude: p.Latitude, Longitude: p.Longitude}
}

// TypeList splits the comma-joined types into trimmed, lower-cased tags.
func (p *Place) TypeList() []string {
	return SplitTypes(p.Types)
}

// SplitTypes splits a comma-joined type string into trimmed, lower-cased, non-empty tags.
func SplitTypes(types string) []string {
	parts := strings.Split(types, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

// HasType reports whether the place is tagged with the given type.
func (p *Place) HasType(placeType string) bool {
	needle := strings.ToLower(strings.TrimSpace(placeType))
	for _, tag := range p.TypeList() {
		if tag == needle {
			return true
		}
	}

	return false
}

// ApplyDefaults normalises optional fields the way inserts expect them:
// out-of-range ratings and negative followers become zero and a blank country
// becomes DefaultCountry. It reports which fields were changed.
func (p *Place) ApplyDefaults() []string {
	var adjusted []string
	if p.Rating < MinRating || p.Rating > MaxRating {
		p.Rating = 0
		adjusted = append(adjusted, ColumnRating.String())
	}
	if p.Followers < 0 {
		p.Followers = 0
		adjusted = append(adjusted, ColumnFollowers.String())
	}
	if strings.TrimSpace(p.Country) == "" {
		p.Country = DefaultCountry
		adjusted = append(adjusted, ColumnCountry.String())
	}

	return adjusted
}
