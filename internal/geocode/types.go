package geocode

// Place is a single geocoding match.
type Place struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// nominatimPlace mirrors one entry of a Nominatim /search response.
// Coordinates arrive as strings and are parsed into Place.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
