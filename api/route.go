package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// postRoute is the API for route summaries between two points. The route
// provider is an external collaborator; this endpoint only validates the
// endpoints and relays the normalized summary.
func (s *Server) postRoute(c *gin.Context) {
	var params struct {
		Origin      []float64 `json:"origin"`
		Destination []float64 `json:"destination"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	origin, err := parsePoint(params.Origin)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	destination, err := parsePoint(params.Destination)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	summary, err := s.router.Route(c.Request.Context(), origin, destination)
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorRouteNotFound, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
