package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-app/beacon-api/score"
)

// getOverview is the API for the combined hazard/resource overview around
// an observer
func (s *Server) getOverview(c *gin.Context) {
	observer, radiusKm, err := parseObserverQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result := s.aggregator.GetOverview(c.Request.Context(), observer, radiusKm)

	if s.metrics != nil {
		s.metrics.OverviewHazards.Observe(float64(len(result.Hazards)))
		s.metrics.OverviewResources.Observe(float64(len(result.Resources.Items)))
	}

	c.JSON(http.StatusOK, result)
}

// getSafety reduces the surrounding hazards to the single status-bar level
func (s *Server) getSafety(c *gin.Context) {
	observer, radiusKm, err := parseObserverQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result := s.aggregator.GetOverview(c.Request.Context(), observer, radiusKm)
	status := score.EvaluateSafety(result.Hazards, observer)

	c.JSON(http.StatusOK, status)
}
