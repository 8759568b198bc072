package types

// GeoPoint is a resolved place as served to the dashboard widgets.
type GeoPoint struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
	Timezone    string  `json:"timezone,omitempty"`
}

// NominatimResult matches one element of the provider's /search response array.
// Coordinates arrive as strings; parsing happens at the service layer.
type NominatimResult struct {
	PlaceID     int64            `json:"place_id"`
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	Class       string           `json:"class"`
	Type        string           `json:"type"`
	Importance  float64          `json:"importance"`
	AddressType string           `json:"addresstype"`
	Address     NominatimAddress `json:"address"`
}

// NominatimAddress is the provider's structured address. Field population is
// inconsistent across countries, so every field is independently optional.
type NominatimAddress struct {
	City        string `json:"city,omitempty"`
	Town        string `json:"town,omitempty"`
	Village     string `json:"village,omitempty"`
	County      string `json:"county,omitempty"`
	State       string `json:"state,omitempty"`
	Province    string `json:"province,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}
