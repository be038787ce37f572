package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTracedRouter(t *testing.T) (*gin.Engine, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	router := gin.New()
	router.Use(RequestID())
	router.Use(Tracing("shop-test", otelgin.WithTracerProvider(provider))...)
	router.GET("/shop/product/:slug", func(c *gin.Context) {
		c.Set(JWTUserIDKey, "7f9c1c2e-5b7a-4d5e-9a37-2f0d8f6c1b11")
		c.Status(http.StatusOK)
	})
	router.POST("/shop/checkout", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	return router, recorder
}

func spanAttr(attrs []attribute.KeyValue, key string) (string, bool) {
	for _, a := range attrs {
		if string(a.Key) == key {
			return a.Value.AsString(), true
		}
	}
	return "", false
}

func TestTracing(t *testing.T) {
	t.Run("span carries route, request and user", func(t *testing.T) {
		router, recorder := newTracedRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/shop/product/nizh", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Contains(t, spans[0].Name(), "/shop/product/:slug")

		id, ok := spanAttr(spans[0].Attributes(), "request_id")
		require.True(t, ok)
		assert.Equal(t, "req-42", id)
		user, ok := spanAttr(spans[0].Attributes(), "user_id")
		require.True(t, ok)
		assert.Equal(t, "7f9c1c2e-5b7a-4d5e-9a37-2f0d8f6c1b11", user)
		assert.NotEqual(t, codes.Error, spans[0].Status().Code)
	})

	t.Run("server errors fail the span", func(t *testing.T) {
		router, recorder := newTracedRouter(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shop/checkout", nil))

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
	})
}
