package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beacon-app/beacon-api/geo"
	"github.com/beacon-app/beacon-api/schema"
)

// getAlerts is the API for hazard-derived alert entries around an observer
func (s *Server) getAlerts(c *gin.Context) {
	observer, radiusKm, err := parseObserverQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result := s.aggregator.GetOverview(c.Request.Context(), observer, radiusKm)

	alerts := make([]schema.Alert, 0, len(result.Hazards))
	now := time.Now().UTC()
	for _, h := range result.Hazards {
		alerts = append(alerts, schema.Alert{
			ID:              "alert_" + h.ID,
			Message:         alertMessage(h, observer),
			HazardSeverity:  h.Severity,
			HazardType:      h.Type,
			HazardLatitude:  h.Latitude,
			HazardLongitude: h.Longitude,
			HazardTitle:     h.Title,
			CreatedAt:       now,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
	})
}

func alertMessage(h schema.HazardRecord, observer schema.Location) string {
	place := h.Attributes.Place
	if place == "" {
		place = h.Title
	}
	dir := compassPoint(geo.Bearing(observer, h.Location()))

	switch h.Severity {
	case schema.HazardSeverityCritical:
		return fmt.Sprintf("Critical %s near %s, %.1f km %s. Seek safety now.", h.Type, place, h.DistanceKm, dir)
	case schema.HazardSeverityHigh:
		return fmt.Sprintf("Major %s near %s, %.1f km %s. Stay alert.", h.Type, place, h.DistanceKm, dir)
	default:
		return fmt.Sprintf("%s reported near %s, %.1f km %s.", capitalizeFirst(h.Type), place, h.DistanceKm, dir)
	}
}

var compassPoints = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// compassPoint reduces a bearing in degrees to an 8-point rose label
func compassPoint(deg float64) string {
	return compassPoints[int((deg+22.5)/45)%8]
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-('a'-'A')) + s[1:]
	}
	return s
}
