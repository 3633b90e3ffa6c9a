package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"places/internal/domain/entity"
)

const (
	MaxNameLength    = 255
	MinNameLength    = 2
	MaxAddressLength = 1000
	MinAddressLength = 5
	MaxTypesLength   = 255
	MaxPincodeDigits = 9
	MaxDecimalPlaces = 8

	reservedPincode = "999999"
	epsilon         = 1e-10
)

var (
	namePattern    = regexp.MustCompile(`^[a-zA-Z0-9\s\-'".&,()]+$`)
	typesPattern   = regexp.MustCompile(`^[a-z0-9_,\s]+$`)
	pincodePattern = regexp.MustCompile(`^[0-9]+$`)

	dangerousPatterns = []string{"<script", "javascript:", "vbscript:", "<iframe", "<object"}
)

// ValidateLatitude checks that v is a number in [-90, 90].
func ValidateLatitude(v any) *Result {
	return validateCoordinate(v, "latitude", "Latitude", entity.MinLatitude, entity.MaxLatitude)
}

// ValidateLongitude checks that v is a number in [-180, 180].
func ValidateLongitude(v any) *Result {
	return validateCoordinate(v, "longitude", "Longitude", entity.MinLongitude, entity.MaxLongitude)
}

func validateCoordinate(v any, field, label string, lower, upper float64) *Result {
	result := NewResult()

	if isBlank(v) {
		result.AddError(label+" is required", field)

		return result
	}

	value, ok := ToFloat(v)
	if !ok {
		result.AddError(fmt.Sprintf("%s must be a valid number, got: %v", label, v), field)

		return result
	}

	if value < lower || value > upper {
		result.AddError(fmt.Sprintf("%s must be between %v and %v, got: %v", label, lower, upper, value), field)
	}

	if decimalPlaces(value) > MaxDecimalPlaces {
		result.AddWarning(fmt.Sprintf("%s has very high precision, consider rounding to %d decimal places", label, MaxDecimalPlaces), field)
	}

	return result
}

// ValidateCoordinates validates both values and flags suspicious pairs.
func ValidateCoordinates(latitude, longitude any) *Result {
	latResult := ValidateLatitude(latitude)
	lonResult := ValidateLongitude(longitude)

	result := NewResult()
	result.Merge(latResult)
	result.Merge(lonResult)

	if !latResult.IsValid || !lonResult.IsValid {
		return result
	}

	lat, _ := ToFloat(latitude)
	lon, _ := ToFloat(longitude)

	if math.Abs(lat) < epsilon && math.Abs(lon) < epsilon {
		result.AddWarning("Coordinates (0, 0) point to the Gulf of Guinea. Please verify this is correct.", "coordinates")
	}
	if math.Abs(math.Abs(lat)-math.Abs(lon)) < epsilon && math.Abs(lat) > epsilon {
		result.AddWarning("Identical absolute values for latitude and longitude are unusual. Please verify.", "coordinates")
	}

	return result
}

// ValidateName checks a place name.
func ValidateName(name string) *Result {
	result := NewResult()

	name = strings.TrimSpace(name)
	if name == "" {
		result.AddError("Place name is required", "name")

		return result
	}

	length := utf8.RuneCountInString(name)
	if length > MaxNameLength {
		result.AddError(fmt.Sprintf("Name must be no more than %d characters, got: %d", MaxNameLength, length), "name")
	}
	if length < MinNameLength {
		result.AddError(fmt.Sprintf("Name must be at least %d characters long", MinNameLength), "name")
	}
	if !namePattern.MatchString(name) {
		result.AddWarning("Name contains special characters that might cause issues", "name")
	}
	if containsDangerousContent(name) {
		result.AddError("Name contains potentially unsafe content", "name")
	}

	return result
}

// ValidateAddress checks a street address.
func ValidateAddress(address string) *Result {
	result := NewResult()

	address = strings.TrimSpace(address)
	if address == "" {
		result.AddError("Address is required", "address")

		return result
	}

	length := utf8.RuneCountInString(address)
	if length > MaxAddressLength {
		result.AddError(fmt.Sprintf("Address must be no more than %d characters, got: %d", MaxAddressLength, length), "address")
	}
	if length < MinAddressLength {
		result.AddError(fmt.Sprintf("Address must be at least %d characters long", MinAddressLength), "address")
	}
	if containsDangerousContent(address) {
		result.AddError("Address contains potentially unsafe content", "address")
	}
	if !strings.ContainsFunc(address, unicode.IsDigit) {
		result.AddWarning("Address doesn't contain any numbers. Consider adding house/building number.", "address")
	}

	return result
}

// ValidateTypes checks a comma-joined type list.
func ValidateTypes(types string) *Result {
	result := NewResult()

	types = strings.TrimSpace(types)
	if types == "" {
		result.AddError("Place types are required", "types")

		return result
	}

	if length := utf8.RuneCountInString(types); length > MaxTypesLength {
		result.AddError(fmt.Sprintf("Types must be no more than %d characters, got: %d", MaxTypesLength, length), "types")
	}
	if !typesPattern.MatchString(types) {
		result.AddWarning("Types should contain only lowercase letters, numbers, underscores, commas, and spaces", "types")
	}

	tags := strings.Fields(strings.ReplaceAll(types, ",", " "))
	if len(tags) == 0 {
		result.AddError("At least one place type must be specified", "types")

		return result
	}

	var unknown []string
	for _, tag := range tags {
		if !entity.IsKnownPlaceType(tag) {
			unknown = append(unknown, tag)
		}
	}
	if len(unknown) > 0 {
		result.AddWarning(fmt.Sprintf("Unknown place types: %s. Consider using standard types.", strings.Join(unknown, ", ")), "types")
	}

	return result
}

// ValidatePincode accepts 1 to MaxPincodeDigits digits. All-zero codes are
// rejected; a leading zero or the reserved 999999 only warn.
func ValidatePincode(pincode string) *Result {
	result := NewResult()

	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		result.AddError("Pincode is required", "pincode")

		return result
	}

	if !pincodePattern.MatchString(pincode) {
		result.AddError(fmt.Sprintf("Pincode must contain only digits, got: %s", pincode), "pincode")

		return result
	}

	if len(pincode) > MaxPincodeDigits {
		result.AddError(fmt.Sprintf("Pincode must be at most %d digits, got: %d", MaxPincodeDigits, len(pincode)), "pincode")

		return result
	}

	switch {
	case strings.Trim(pincode, "0") == "":
		result.AddError("Invalid pincode: "+pincode, "pincode")
	case pincode == reservedPincode:
		result.AddWarning("Pincode 999999 is reserved and might be invalid", "pincode")
	case pincode[0] == '0':
		result.AddWarning("Pincodes starting with 0 are rare", "pincode")
	}

	return result
}

// PlaceInput is the raw, not yet typed, shape of a place submission.
// Coordinates are any so numeric strings from forms and JSON numbers are both accepted.
type PlaceInput struct {
	Name      string
	Address   string
	Types     string
	Pincode   string
	Latitude  any
	Longitude any
}

// ValidatePlace validates a full submission: required fields first, then each
// supplied field and the coordinate pair.
func ValidatePlace(input PlaceInput) *Result {
	result := NewResult()

	required := []struct {
		field string
		value string
	}{
		{"name", input.Name},
		{"address", input.Address},
		{"types", input.Types},
		{"pincode", input.Pincode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			result.AddError(fmt.Sprintf("Required field '%s' is missing", r.field), r.field)
		}
	}

	if strings.TrimSpace(input.Name) != "" {
		result.Merge(ValidateName(input.Name))
	}
	if strings.TrimSpace(input.Address) != "" {
		result.Merge(ValidateAddress(input.Address))
	}
	if strings.TrimSpace(input.Types) != "" {
		result.Merge(ValidateTypes(input.Types))
	}
	if strings.TrimSpace(input.Pincode) != "" {
		result.Merge(ValidatePincode(input.Pincode))
	}

	result.Merge(ValidateCoordinates(input.Latitude, input.Longitude))

	return result
}

// PlaceUpdateInput carries only the fields an update supplies.
type PlaceUpdateInput struct {
	Name      *string
	Address   *string
	Types     *string
	Pincode   *string
	Latitude  *float64
	Longitude *float64
	Rating    *float64
	Followers *float64
}

// ValidatePlaceUpdate validates only the supplied fields. A single supplied
// coordinate is range-checked on its own.
func ValidatePlaceUpdate(input PlaceUpdateInput) *Result {
	result := NewResult()

	if input.Name != nil {
		result.Merge(ValidateName(*input.Name))
	}
	if input.Address != nil {
		result.Merge(ValidateAddress(*input.Address))
	}
	if input.Types != nil {
		result.Merge(ValidateTypes(*input.Types))
	}
	if input.Pincode != nil {
		result.Merge(ValidatePincode(*input.Pincode))
	}

	switch {
	case input.Latitude != nil && input.Longitude != nil:
		result.Merge(ValidateCoordinates(*input.Latitude, *input.Longitude))
	case input.Latitude != nil:
		result.Merge(ValidateLatitude(*input.Latitude))
	case input.Longitude != nil:
		result.Merge(ValidateLongitude(*input.Longitude))
	}

	if input.Rating != nil && (*input.Rating < entity.MinRating || *input.Rating > entity.MaxRating) {
		result.AddError("Rating must be between 0 and 5", entity.ColumnRating.String())
	}
	if input.Followers != nil && *input.Followers < 0 {
		result.AddError("Followers cannot be negative", entity.ColumnFollowers.String())
	}

	return result
}

// ToFloat coerces a numeric value, numeric string or json.Number to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return ToFloat(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()

		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}

		return ToFloat(f)
	default:
		return 0, false
	}
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)

	return ok && strings.TrimSpace(s) == ""
}

func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}

	return 0
}

func containsDangerousContent(s string) bool {
	lower := strings.ToLower(s)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}

	return false
}
