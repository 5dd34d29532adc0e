package routing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"
)

func TestLineStringJSON(t *testing.T) {
	geometry, err := lineStringJSON([]maps.LatLng{
		{Lat: 37.7749, Lng: -122.4194},
		{Lat: 37.7755, Lng: -122.4180},
	})
	assert.NoError(t, err)

	var decoded struct {
		Type        string      `json:"type"`
		Coordinates [][]float64 `json:"coordinates"`
	}
	assert.NoError(t, json.Unmarshal([]byte(geometry), &decoded))
	assert.Equal(t, "LineString", decoded.Type)
	assert.Len(t, decoded.Coordinates, 2)
	// GeoJSON is [lon, lat]
	assert.Equal(t, -122.4194, decoded.Coordinates[0][0])
	assert.Equal(t, 37.7749, decoded.Coordinates[0][1])
}

func TestStripTags(t *testing.T) {
	assert.Equal(t,
		"Turn left onto Market St",
		stripTags(`Turn <b>left</b> onto <b>Market St</b>`))
	assert.Equal(t, "Head north", stripTags("Head north"))
	assert.Equal(t,
		"Continue straight Destination will be on the right",
		stripTags(`Continue straight<div style="font-size:0.9em">Destination will be on the right</div>`))
}
