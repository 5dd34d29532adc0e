package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/beacon-app/beacon-api/consts"
	"github.com/beacon-app/beacon-api/schema"
)

// parseObserverQuery validates the lat/lon/radius_km query triple shared by
// the overview-style endpoints. Malformed or out-of-range input is rejected
// before any computation happens.
func parseObserverQuery(c *gin.Context) (schema.Location, float64, error) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return schema.Location{}, 0, fmt.Errorf("invalid lat: %s", c.Query("lat"))
	}

	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return schema.Location{}, 0, fmt.Errorf("invalid lon: %s", c.Query("lon"))
	}

	loc := schema.Location{Latitude: lat, Longitude: lon}
	if !loc.Valid() {
		return schema.Location{}, 0, fmt.Errorf("coordinates out of range: %f, %f", lat, lon)
	}

	radiusKm := consts.DEFAULT_RADIUS_KM
	if raw := c.Query("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return schema.Location{}, 0, fmt.Errorf("invalid radius_km: %s", raw)
		}
	}
	if radiusKm < consts.MIN_RADIUS_KM || radiusKm > consts.MAX_RADIUS_KM {
		return schema.Location{}, 0, fmt.Errorf("radius_km out of range: %f", radiusKm)
	}

	return loc, radiusKm, nil
}

// parsePoint validates a [lat, lon] pair from a JSON body.
func parsePoint(point []float64) (schema.Location, error) {
	if len(point) != 2 {
		return schema.Location{}, fmt.Errorf("a point must be [lat, lon]")
	}

	loc := schema.Location{Latitude: point[0], Longitude: point[1]}
	if !loc.Valid() {
		return schema.Location{}, fmt.Errorf("coordinates out of range: %f, %f", point[0], point[1])
	}

	return loc, nil
}
