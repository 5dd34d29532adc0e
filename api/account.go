package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-app/beacon-api/schema"
	"github.com/beacon-app/beacon-api/store"
)

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	accountNumber := c.GetString("requester")

	a, err := s.store.CreateAccount(accountNumber)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	accountNumber := c.GetString("requester")

	a, err := s.store.GetAccount(accountNumber)
	if err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountUpdateLocation is the API for refreshing the requester's last
// known position
func (s *Server) accountUpdateLocation(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	loc := schema.Location{Latitude: params.Latitude, Longitude: params.Longitude}
	if !loc.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.UpdateAccountGeoPosition(accountNumber, params.Latitude, params.Longitude); err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// assignPublicTag is the API for assigning the shareable public tag. It is
// idempotent: an already tagged account gets its existing tag back.
func (s *Server) assignPublicTag(c *gin.Context) {
	accountNumber := c.GetString("requester")

	tag, err := s.store.AssignPublicTag(accountNumber)
	if err != nil {
		switch err {
		case store.ErrAccountNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound, err)
		case store.ErrTagAssignmentExhausted:
			abortWithEncoding(c, http.StatusConflict, errorTagExhausted, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"public_tag": tag,
	})
}
