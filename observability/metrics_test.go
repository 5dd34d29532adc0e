package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	m := NewMetricsForTesting()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/overview", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/overview", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	count := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/overview", "200"))
	assert.Equal(t, 3.0, count, "wrong request count")
}

func TestMiddlewareLabelsUnmatchedRoutes(t *testing.T) {
	m := NewMetricsForTesting()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.Middleware())

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	count := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("unmatched", "404"))
	assert.Equal(t, 1.0, count, "wrong unmatched count")
}
