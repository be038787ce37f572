package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics(t *testing.T) {
	m := NewHTTPMetrics("test")

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/shop/products/:slug", func(c *gin.Context) {
		c.String(http.StatusOK, "product")
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for _, slug := range []string{"sholom", "nizh", "bronezhylet"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shop/products/"+slug, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	t.Run("counts by route template", func(t *testing.T) {
		assert.Equal(t, 3.0, testutil.ToFloat64(
			m.requestsTotal.WithLabelValues(http.MethodGet, "/shop/products/:slug", "200")))
		assert.Equal(t, 1.0, testutil.ToFloat64(
			m.requestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
	})

	t.Run("no request in flight afterwards", func(t *testing.T) {
		assert.Equal(t, 0.0, testutil.ToFloat64(m.activeRequests))
	})

	t.Run("exposition endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "test_"+MetricRequestsTotal)
		assert.Contains(t, body, "test_"+MetricRequestDuration+"_bucket")
		assert.Contains(t, body, "go_goroutines")
	})
}
