package store

// Location is a named place with geographic coordinates in degrees.
type Location struct {
	Name string
	Lat  float64
	Lon  float64
}

// LocationResolver is the interface for resolving place names to coordinates.
type LocationResolver interface {
	// Resolve returns the location for a place name (e.g., "bielefeld").
	Resolve(place string) (*Location, error)

	// ListPlaces returns the available place names.
	ListPlaces() ([]string, error)
}
