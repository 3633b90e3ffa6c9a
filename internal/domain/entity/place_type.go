package entity

// PlaceType is a well-known tag that can appear in Place.Types.
type PlaceType string

const (
	PlaceTypeRestaurant        PlaceType = "restaurant"
	PlaceTypeHotel             PlaceType = "hotel"
	PlaceTypeTouristAttraction PlaceType = "tourist_attraction"
	PlaceTypeMuseum            PlaceType = "museum"
	PlaceTypePark              PlaceType = "park"
	PlaceTypeShoppingMall      PlaceType = "shopping_mall"
	PlaceTypeHospital          PlaceType = "hospital"
	PlaceTypeSchool            PlaceType = "school"
	PlaceTypeBank              PlaceType = "bank"
	PlaceTypeGasStation        PlaceType = "gas_station"
	PlaceTypeCafe              PlaceType = "cafe"
	PlaceTypeBar               PlaceType = "bar"
	PlaceTypeGym               PlaceType = "gym"
	PlaceTypePharmacy          PlaceType = "pharmacy"
	PlaceTypeSupermarket       PlaceType = "supermarket"
	PlaceTypeLibrary           PlaceType = "library"
	PlaceTypePolice            PlaceType = "police"
	PlaceTypeFireStation       PlaceType = "fire_station"
	PlaceTypePostOffice        PlaceType = "post_office"
	PlaceTypeChurch            PlaceType = "church"
	PlaceTypeMosque            PlaceType = "mosque"
	PlaceTypeTemple            PlaceType = "temple"
	PlaceTypeCemetery          PlaceType = "cemetery"
	PlaceTypeAirport           PlaceType = "airport"
	PlaceTypeTrainStation      PlaceType = "train_station"
	PlaceTypeBusStation        PlaceType = "bus_station"
)

// KnownPlaceTypes lists every well-known type in declaration order.
var KnownPlaceTypes = []PlaceType{
	PlaceTypeRestaurant, PlaceTypeHotel, PlaceTypeTouristAttraction, PlaceTypeMuseum,
	PlaceTypePark, PlaceTypeShoppingMall, PlaceTypeHospital, PlaceTypeSchool, PlaceTypeBank,
	PlaceTypeGasStation, PlaceTypeCafe, PlaceTypeBar, PlaceTypeGym, PlaceTypePharmacy,
	PlaceTypeSupermarket, PlaceTypeLibrary, PlaceTypePolice, PlaceTypeFireStation,
	PlaceTypePostOffice, PlaceTypeChurch, PlaceTypeMosque, PlaceTypeTemple, PlaceTypeCemetery,
	PlaceTypeAirport, PlaceTypeTrainStation, PlaceTypeBusStation,
}

// IsKnownPlaceType reports whether tag is one of KnownPlaceTypes.
func IsKnownPlaceType(tag string) bool {
	for _, known := range KnownPlaceTypes {
		if string(known) == tag {
			return true
		}
	}

	return false
}
