package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLatitude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		value        any
		wantValid    bool
		wantWarnings int
	}{
		{name: "float in range", value: 12.9716, wantValid: true},
		{name: "numeric string", value: " 12.5 ", wantValid: true},
		{name: "integer", value: 45, wantValid: true},
		{name: "json number", value: json.Number("-33.86"), wantValid: true},
		{name: "boundary", value: 90.0, wantValid: true},
		{name: "above range", value: 90.0001, wantValid: false},
		{name: "below range", value: -91, wantValid: false},
		{name: "not a number", value: "north", wantValid: false},
		{name: "missing", value: nil, wantValid: false},
		{name: "blank string", value: "   ", wantValid: false},
		{name: "bool", value: true, wantValid: false},
		{name: "high precision", value: 12.123456789, wantValid: true, wantWarnings: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := ValidateLatitude(tt.value)
			assert.Equal(t, tt.wantValid, result.IsValid, result.Errors)
			assert.Len(t, result.Warnings, tt.wantWarnings)
			if !tt.wantValid {
				assert.NotEmpty(t, result.FieldMessages("latitude"))
			}
		})
	}
}

func TestValidateLongitude(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateLongitude(180).IsValid)
	assert.True(t, ValidateLongitude("-180").IsValid)
	assert.False(t, ValidateLongitude(180.5).IsValid)

	result := ValidateLongitude("east")
	require.False(t, result.IsValid)
	assert.Equal(t, []string{"Longitude must be a valid number, got: east"}, result.FieldMessages("longitude"))
}

func TestValidateCoordinates(t *testing.T) {
	t.Parallel()

	t.Run("valid pair", func(t *testing.T) {
		t.Parallel()

		result := ValidateCoordinates(12.9716, 77.5946)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Warnings)
	})

	t.Run("null island warns", func(t *testing.T) {
		t.Parallel()

		result := ValidateCoordinates(0, 0)
		assert.True(t, result.IsValid)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "Gulf of Guinea")
		assert.True(t, strings.HasPrefix(result.FieldMessages("coordinates")[0], warningPrefix))
	})

	t.Run("identical absolute values warn", func(t *testing.T) {
		t.Parallel()

		result := ValidateCoordinates(45.0, -45.0)
		assert.True(t, result.IsValid)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "Identical absolute values")
	})

	t.Run("both invalid collects both errors", func(t *testing.T) {
		t.Parallel()

		result := ValidateCoordinates(100, 200)
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 2)
		assert.Contains(t, result.FieldErrors, "latitude")
		assert.Contains(t, result.FieldErrors, "longitude")
	})
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		value        string
		wantValid    bool
		wantWarnings int
	}{
		{name: "plain", value: "Blue Tokai Coffee", wantValid: true},
		{name: "punctuation allowed", value: "Joe's Diner & Co. (Main)", wantValid: true},
		{name: "too short", value: "A", wantValid: false},
		{name: "blank", value: "   ", wantValid: false},
		{name: "too long", value: strings.Repeat("a", MaxNameLength+1), wantValid: false},
		{name: "special characters warn", value: "Café Noir", wantValid: true, wantWarnings: 1},
		{name: "script injection", value: "<script>alert(1)</script>", wantValid: false, wantWarnings: 1},
		{name: "javascript scheme", value: "JavaScript:void", wantValid: false, wantWarnings: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := ValidateName(tt.value)
			assert.Equal(t, tt.wantValid, result.IsValid, result.Errors)
			assert.Len(t, result.Warnings, tt.wantWarnings)
		})
	}
}

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	result := ValidateAddress("12 MG Road, Bengaluru")
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)

	result = ValidateAddress("MG Road")
	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "doesn't contain any numbers")

	assert.False(t, ValidateAddress("1 A").IsValid)
	assert.False(t, ValidateAddress("").IsValid)
	assert.False(t, ValidateAddress(strings.Repeat("9", MaxAddressLength+1)).IsValid)
	assert.False(t, ValidateAddress("12 <iframe src=x> Street").IsValid)
}

func TestValidateTypes(t *testing.T) {
	t.Parallel()

	result := ValidateTypes("cafe, restaurant")
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)

	result = ValidateTypes("cafe, spaceport")
	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Unknown place types: spaceport")

	result = ValidateTypes("Cafe")
	assert.True(t, result.IsValid)
	assert.Len(t, result.Warnings, 2)

	result = ValidateTypes(" , , ")
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "At least one place type must be specified")

	assert.False(t, ValidateTypes("").IsValid)
	assert.False(t, ValidateTypes(strings.Repeat("cafe,", 60)).IsValid)
}

func TestValidatePincode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		value        string
		wantValid    bool
		wantWarnings int
	}{
		{name: "six digits", value: "560001", wantValid: true},
		{name: "five digits", value: "94107", wantValid: true},
		{name: "nine digits", value: "123456789", wantValid: true},
		{name: "surrounding spaces trimmed", value: " 560001 ", wantValid: true},
		{name: "ten digits", value: "1234567890", wantValid: false},
		{name: "letters", value: "56A001", wantValid: false},
		{name: "all zeros", value: "000000", wantValid: false},
		{name: "single zero", value: "0", wantValid: false},
		{name: "blank", value: "", wantValid: false},
		{name: "reserved", value: "999999", wantValid: true, wantWarnings: 1},
		{name: "leading zero", value: "012345", wantValid: true, wantWarnings: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := ValidatePincode(tt.value)
			assert.Equal(t, tt.wantValid, result.IsValid, result.Errors)
			assert.Len(t, result.Warnings, tt.wantWarnings)
		})
	}
}

func TestValidatePlace(t *testing.T) {
	t.Parallel()

	t.Run("complete submission", func(t *testing.T) {
		t.Parallel()

		result := ValidatePlace(PlaceInput{
			Name:      "X Cafe",
			Address:   "1 Main St",
			Types:     "cafe",
			Pincode:   "560001",
			Latitude:  12.9,
			Longitude: 77.6,
		})
		assert.True(t, result.IsValid, result.Errors)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()

		result := ValidatePlace(PlaceInput{Latitude: 12.9, Longitude: 77.6})
		assert.False(t, result.IsValid)
		for _, field := range []string{"name", "address", "types", "pincode"} {
			assert.Contains(t, result.FieldMessages(field), "Required field '"+field+"' is missing")
		}
	})

	t.Run("bad coordinates reject the place", func(t *testing.T) {
		t.Parallel()

		result := ValidatePlace(PlaceInput{
			Name:      "X Cafe",
			Address:   "1 Main St",
			Types:     "cafe",
			Pincode:   "560001",
			Latitude:  "abc",
			Longitude: 77.6,
		})
		assert.False(t, result.IsValid)
		assert.NotEmpty(t, result.FieldMessages("latitude"))
	})
}

func TestValidatePlaceUpdate(t *testing.T) {
	t.Parallel()

	name := "Renamed Cafe"
	lat := 95.0
	result := ValidatePlaceUpdate(PlaceUpdateInput{Name: &name, Latitude: &lat})
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.FieldMessages("latitude"))
	assert.Empty(t, result.FieldMessages("name"))

	assert.True(t, ValidatePlaceUpdate(PlaceUpdateInput{}).IsValid)

	rating := 5.1
	followers := -2.0
	result = ValidatePlaceUpdate(PlaceUpdateInput{Rating: &rating, Followers: &followers})
	assert.NotEmpty(t, result.FieldMessages("rating"))
	assert.NotEmpty(t, result.FieldMessages("followers"))
}

func TestResultSummary(t *testing.T) {
	t.Parallel()

	result := NewResult()
	assert.Equal(t, "No errors", result.Summary())

	result.AddError("first", "name")
	result.AddError("second", "")
	assert.Equal(t, "Validation Errors:\n  1. first\n  2. second", result.Summary())
	assert.Equal(t, []string{"first"}, result.FieldMessages("name"))
}
