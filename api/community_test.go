package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/beacon-app/beacon-api/api/mocks"
	"github.com/beacon-app/beacon-api/schema"
	"github.com/beacon-app/beacon-api/store"
)

func newTestRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeRequester())
	router.POST("/neighbors", s.addNeighbor)
	router.GET("/neighbors", s.listNeighbors)
	router.POST("/resources", s.postResource)
	router.GET("/resources", s.listResources)
	router.GET("/resources/:resourceID", s.getResource)
	router.PATCH("/resources/:resourceID/claim", s.claimResource)
	router.PATCH("/resources/:resourceID/complete", s.completeResource)
	return router
}

func TestAddNeighbor(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	b.EXPECT().AddNeighbor("acct-1", "acct-2").Return(nil).Times(1)

	router := newTestRouter(&s)

	req := httptest.NewRequest("POST", "/neighbors", strings.NewReader(`{"neighbor_number":"acct-2"}`))
	req.Header.Set("X-Account-Number", "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestAddNeighborSelf(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	b.EXPECT().AddNeighbor("acct-1", "acct-1").Return(store.ErrSelfReference).Times(1)

	router := newTestRouter(&s)

	req := httptest.NewRequest("POST", "/neighbors", strings.NewReader(`{"neighbor_number":"acct-1"}`))
	req.Header.Set("X-Account-Number", "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorSelfReference.Code, resp.Code, "wrong error code")
}

func TestAddNeighborMissingRequester(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	router := newTestRouter(&s)

	req := httptest.NewRequest("POST", "/neighbors", strings.NewReader(`{"neighbor_number":"acct-2"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorMissingAccountNumber.Code, resp.Code, "wrong error code")
}

func TestListNeighbors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	b.EXPECT().ListNeighbors("acct-1").Return([]schema.NeighborEdge{
		{AccountNumber: "acct-1", NeighborNumber: "acct-2"},
		{AccountNumber: "acct-1", NeighborNumber: "acct-3"},
	}, nil).Times(1)

	router := newTestRouter(&s)

	req := httptest.NewRequest("GET", "/neighbors", nil)
	req.Header.Set("X-Account-Number", "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Neighbors []schema.NeighborEdge `json:"neighbors"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, resp.Neighbors, 2, "wrong edge count")
	assert.Equal(t, "acct-2", resp.Neighbors[0].NeighborNumber, "wrong neighbor")
}

func TestPostResource(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	id := uuid.New()
	b.EXPECT().
		PostResource("acct-1", schema.ResourceOffering, "Bottled water", "3 cases", schema.Location{Latitude: 37.7749, Longitude: -122.4194}).
		Return(&schema.CommunityResource{
			ID:            id,
			AccountNumber: "acct-1",
			Type:          schema.ResourceOffering,
			Title:         "Bottled water",
			Status:        schema.CommunityResourceActive,
		}, nil).Times(1)

	router := newTestRouter(&s)

	body := `{"type":"offering","title":"Bottled water","description":"3 cases","latitude":37.7749,"longitude":-122.4194}`
	req := httptest.NewRequest("POST", "/resources", strings.NewReader(body))
	req.Header.Set("X-Account-Number", "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp schema.CommunityResource
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, id, resp.ID, "wrong resource id")
	assert.Equal(t, schema.CommunityResourceActive, resp.Status, "wrong status")
}

func TestPostResourceInvalidType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	b.EXPECT().
		PostResource("acct-1", "donating", "Bottled water", "", gomock.Any()).
		Return(nil, store.ErrInvalidResourceType).Times(1)

	router := newTestRouter(&s)

	body := `{"type":"donating","title":"Bottled water","latitude":37.7749,"longitude":-122.4194}`
	req := httptest.NewRequest("POST", "/resources", strings.NewReader(body))
	req.Header.Set("X-Account-Number", "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorInvalidResourceType.Code, resp.Code, "wrong error code")
}

func TestPostResourceMissingTitle(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	router := newTestRouter(&s)

	body := `{"type":"offering","latitude":37.7749,"longitude":-122.4194}`
	req := httptest.NewRequest("POST", "/resources", strings.NewReader(body))
	req.Header.Set("X-Account-Number", "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestGetResourceNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	b.EXPECT().GetResource("res-9").Return(nil, store.ErrResourceNotFound).Times(1)

	router := newTestRouter(&s)

	req := httptest.NewRequest("GET", "/resources/res-9", nil)
	req.Header.Set("X-Account-Number", "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorResourceNotFound.Code, resp.Code, "wrong error code")
}

func TestClaimResource(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	b.EXPECT().ClaimResource("res-1", "acct-2").Return(nil).Times(1)

	router := newTestRouter(&s)

	req := httptest.NewRequest("PATCH", "/resources/res-1/claim", nil)
	req.Header.Set("X-Account-Number", "acct-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestClaimResourceAlreadyClaimed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	b.EXPECT().ClaimResource("res-1", "acct-3").Return(store.ErrInvalidStateTransition).Times(1)

	router := newTestRouter(&s)

	req := httptest.NewRequest("PATCH", "/resources/res-1/claim", nil)
	req.Header.Set("X-Account-Number", "acct-3")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorInvalidStateTransition.Code, resp.Code, "wrong error code")
}

func TestCompleteResourceNotOwner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	b.EXPECT().CompleteResource("res-1", "acct-2").Return(store.ErrInvalidStateTransition).Times(1)

	router := newTestRouter(&s)

	req := httptest.NewRequest("PATCH", "/resources/res-1/complete", nil)
	req.Header.Set("X-Account-Number", "acct-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
}

func TestListResourcesClampsRadius(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBeaconCore(ctl)
	s := Server{store: b}

	b.EXPECT().
		ListNearbyResources(schema.Location{Latitude: 37.7749, Longitude: -122.4194}, 50.0).
		Return([]schema.CommunityResource{}, nil).Times(1)

	router := newTestRouter(&s)

	req := httptest.NewRequest("GET", "/resources?lat=37.7749&lon=-122.4194&radius_km=400", nil)
	req.Header.Set("X-Account-Number", "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}
