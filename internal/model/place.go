package model

// EcoPlace is a directory entry for a place that supports the circular
// economy: recycling centers, repair shops, donation hubs.
type EcoPlace struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	PlaceType   string   `json:"place_type"`
	Address     string   `json:"address"`
	City        string   `json:"city,omitempty"`
	Website     string   `json:"website,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Eco place types.
const (
	PlaceRecycling = "recycling"
	PlaceRepair    = "repair"
	PlaceDonation  = "donation"
	PlaceOther     = "other"
)

// ValidPlaceType reports whether placeType is a known eco place type.
func ValidPlaceType(placeType string) bool {
	switch placeType {
	case PlaceRecycling, PlaceRepair, PlaceDonation, PlaceOther:
		return true
	}
	return false
}

// PlaceTypeName returns the display name for an eco place type.
func PlaceTypeName(placeType string) string {
	switch placeType {
	case PlaceRecycling:
		return "Recycling Center"
	case PlaceRepair:
		return "Repair Shop"
	case PlaceDonation:
		return "Donation Hub"
	case PlaceOther:
		return "Other"
	default:
		return placeType
	}
}
