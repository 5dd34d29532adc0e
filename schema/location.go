package schema

// Location is a WGS84 coordinate pair. It is treated as an immutable value.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Valid reports whether the coordinates are inside the WGS84 bounds.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// GeoJSON is the point representation stored in mongodb 2dsphere-indexed
// collections. Coordinates are [longitude, latitude].
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewGeoJSONPoint builds a GeoJSON point from a location.
func NewGeoJSONPoint(loc Location) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}

// Location converts the GeoJSON point back to a coordinate pair.
func (g *GeoJSON) Location() Location {
	if g == nil || len(g.Coordinates) < 2 {
		return Location{}
	}
	return Location{
		Latitude:  g.Coordinates[1],
		Longitude: g.Coordinates[0],
	}
}
