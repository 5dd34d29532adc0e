package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/beacon-app/beacon-api/schema"
	"github.com/beacon-app/beacon-api/score"
)

// askAssistant is the API for the conversational assistant. The language
// handling itself is an opaque external service; this endpoint only
// assembles a situation summary from the overview engine when the client
// shares its location.
func (s *Server) askAssistant(c *gin.Context) {
	var params struct {
		Message   string   `json:"message"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.Message == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var situation string
	if params.Latitude != nil && params.Longitude != nil {
		observer := schema.Location{Latitude: *params.Latitude, Longitude: *params.Longitude}
		if !observer.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		result := s.aggregator.GetOverview(c.Request.Context(), observer, 50)
		situation = situationSummary(result, observer)
	}

	answer, err := s.assistant.Complete(c.Request.Context(), situation, params.Message)
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorAssistantUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answer": answer,
	})
}

// situationSummary flattens an overview into a few plain-text lines the
// completion service can ground its answer in.
func situationSummary(result *schema.OverviewResult, observer schema.Location) string {
	var b strings.Builder

	status := score.EvaluateSafety(result.Hazards, observer)
	fmt.Fprintf(&b, "Safety level: %s.\n", status.Level)

	if len(result.Hazards) == 0 {
		b.WriteString("No hazards within range.\n")
	}
	for i, h := range result.Hazards {
		if i == 5 {
			fmt.Fprintf(&b, "...and %d more hazards.\n", len(result.Hazards)-i)
			break
		}
		fmt.Fprintf(&b, "Hazard: %s (%s), %.1f km away.\n", h.Title, h.Severity, h.DistanceKm)
	}

	for i, r := range result.Resources.Items {
		if i == 5 {
			fmt.Fprintf(&b, "...and %d more resources.\n", len(result.Resources.Items)-i)
			break
		}
		fmt.Fprintf(&b, "%s: %s, %.1f km away (%s).\n", r.Label, r.Name, r.DistanceKm, r.Status)
	}

	return b.String()
}
