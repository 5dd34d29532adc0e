package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-app/beacon-api/consts"
	"github.com/beacon-app/beacon-api/schema"
	"github.com/beacon-app/beacon-api/store"
)

// addNeighbor is the API for linking another account as a neighbor. The
// edge is one-directional; the other account links back through its own
// flow when mutual visibility is wanted.
func (s *Server) addNeighbor(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		NeighborNumber string `json:"neighbor_number"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.NeighborNumber == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.AddNeighbor(requester, params.NeighborNumber); err != nil {
		if err == store.ErrSelfReference {
			abortWithEncoding(c, http.StatusBadRequest, errorSelfReference, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// listNeighbors is the API for the requester's outgoing neighbor edges
func (s *Server) listNeighbors(c *gin.Context) {
	requester := c.GetString("requester")

	edges, err := s.store.ListNeighbors(requester)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"neighbors": edges,
	})
}

// postResource is the API for offering or requesting something to nearby
// users
func (s *Server) postResource(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Type        string  `json:"type"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	loc := schema.Location{Latitude: params.Latitude, Longitude: params.Longitude}
	if params.Title == "" || !loc.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	resource, err := s.store.PostResource(requester, params.Type, params.Title, params.Description, loc)
	if err != nil {
		if err == store.ErrInvalidResourceType {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidResourceType, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, resource)
}

// listResources is the API for community resources around the requester
func (s *Server) listResources(c *gin.Context) {
	observer, radiusKm, err := parseObserverQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if radiusKm > consts.COMMUNITY_DISTANCE_RANGE_KM {
		radiusKm = consts.COMMUNITY_DISTANCE_RANGE_KM
	}

	resources, err := s.store.ListNearbyResources(observer, radiusKm)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resources": resources,
	})
}

// getResource is the API for a single community resource
func (s *Server) getResource(c *gin.Context) {
	id := c.Param("resourceID")

	resource, err := s.store.GetResource(id)
	if err != nil {
		if err == store.ErrResourceNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorResourceNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, resource)
}

// claimResource is the API for claiming an active community resource
func (s *Server) claimResource(c *gin.Context) {
	requester := c.GetString("requester")
	id := c.Param("resourceID")

	if err := s.store.ClaimResource(id, requester); err != nil {
		if err == store.ErrInvalidStateTransition {
			abortWithEncoding(c, http.StatusConflict, errorInvalidStateTransition, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// completeResource is the API for the posting account to close out a
// claimed resource
func (s *Server) completeResource(c *gin.Context) {
	requester := c.GetString("requester")
	id := c.Param("resourceID")

	if err := s.store.CompleteResource(id, requester); err != nil {
		if err == store.ErrInvalidStateTransition {
			abortWithEncoding(c, http.StatusConflict, errorInvalidStateTransition, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
