package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/merchant_conversion_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestStructuredLoggingMiddleware_InjectsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	r := newTestRouter()
	r.Use(middleware.StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("from handler")
		assert.Same(t, middleware.GetLoggerFromContext(c), middleware.GetLoggerFromCtx(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	requestID := w.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(requestID)
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, `"msg":"from handler"`)
	assert.Contains(t, logs, `"msg":"Request completed"`)
	assert.Contains(t, logs, `"request_id":"`+requestID+`"`)
	assert.Contains(t, logs, `"path":"/ping"`)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	l, err := middleware.NewIPRateLimiter("2-M")
	require.NoError(t, err)

	r := newTestRouter()
	r.Use(middleware.RateLimit(l))
	r.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client has its own budget.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = "198.51.100.9:5000"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
}

func TestNewIPRateLimiter_RejectsBadFormat(t *testing.T) {
	_, err := middleware.NewIPRateLimiter("sixty per minute")
	assert.Error(t, err)
}

func TestSecurityHeaders(t *testing.T) {
	r := newTestRouter()
	r.Use(middleware.SecurityHeaders(true))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	r := newTestRouter()
	r.Use(middleware.CORS([]string{"https://shop.example.com"}))
	r.POST("/api", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRecovery_HidesPanicDetail(t *testing.T) {
	r := newTestRouter()
	r.Use(middleware.Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("ledger exploded") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"An unexpected error occurred"}`, w.Body.String())
}
