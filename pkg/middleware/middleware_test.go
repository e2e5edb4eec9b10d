package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi-nd08/career-guidance/pkg/models"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func doRequest(t *testing.T, mw echo.MiddlewareFunc, ip string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/market-trends", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = mw(okHandler)(c)
	return rec
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(60, 5)
	mw := rl.RateLimitMiddleware()

	for i := 0; i < 5; i++ {
		rec := doRequest(t, mw, "203.0.113.10")
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	mw := rl.RateLimitMiddleware()

	doRequest(t, mw, "203.0.113.20")
	doRequest(t, mw, "203.0.113.20")
	rec := doRequest(t, mw, "203.0.113.20")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rate_limit_exceeded", resp.Error)
}

func TestRateLimiter_TracksIPsIndependently(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	mw := rl.RateLimitMiddleware()

	first := doRequest(t, mw, "203.0.113.30")
	second := doRequest(t, mw, "203.0.113.31")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestPerEndpointRateLimiter_CustomLimit(t *testing.T) {
	perl := NewPerEndpointRateLimiter(60, 10)
	perl.SetEndpointLimit("GET /api/market-trends", 1, 1)
	mw := perl.RateLimitMiddleware()

	first := doRequest(t, mw, "203.0.113.40")
	second := doRequest(t, mw, "203.0.113.40")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestCORSConfig(t *testing.T) {
	config := CORSConfig()

	assert.Equal(t, []string{"*"}, config.AllowOrigins)
	assert.Contains(t, config.AllowMethods, http.MethodPost)
	assert.False(t, config.AllowCredentials)
}

func TestSecurityHeaders_Defaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := SecurityHeaders(SecurityHeadersConfig{})
	require.NoError(t, mw(okHandler)(c))

	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Contains(t, rec.Header().Get("Permissions-Policy"), "camera=()")
}

func TestSecurityHeaders_CustomPolicy(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := SecurityHeaders(SecurityHeadersConfig{ReferrerPolicy: "no-referrer"})
	require.NoError(t, mw(okHandler)(c))

	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
}
