package usgs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beacon-app/beacon-api/schema"
)

const sampleFeed = `{
	"features": [
		{
			"id": "nc73649170",
			"properties": {
				"mag": 6.2,
				"place": "3km W of San Francisco, CA",
				"time": 1650000000000,
				"title": "M 6.2 - 3km W of San Francisco, CA",
				"type": "earthquake"
			},
			"geometry": {
				"coordinates": [-122.4190, 37.7750, 8.2]
			}
		},
		{
			"id": "broken",
			"properties": {"mag": 1.0},
			"geometry": {"coordinates": []}
		}
	]
}`

func TestHazardsMapsFeed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleFeed))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, nil)
	hazards, err := client.Hazards(context.Background(), schema.Location{}, 100)

	assert.NoError(t, err)
	assert.Len(t, hazards, 1) // the record without coordinates is dropped

	h := hazards[0]
	assert.Equal(t, "usgs_nc73649170", h.ID)
	assert.Equal(t, "usgs", h.Source)
	assert.Equal(t, "earthquake", h.Type)
	assert.Equal(t, 37.7750, h.Latitude)
	assert.Equal(t, -122.4190, h.Longitude)
	assert.Equal(t, 6.2, h.Attributes.Magnitude)
	assert.Equal(t, "3km W of San Francisco, CA", h.Attributes.Place)
}

func TestHazardsFeedDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, nil)
	_, err := client.Hazards(context.Background(), schema.Location{}, 100)
	assert.Error(t, err)
}
