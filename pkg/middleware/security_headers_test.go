package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders_DefaultHeaders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SecurityHeaders(SecurityHeadersConfig{})(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	err := handler(c)
	assert.NoError(t, err)

	// Verify Content-Security-Policy
	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'self'")
	assert.Contains(t, csp, "connect-src 'self' https://api.stripe.com")
	assert.Contains(t, csp, "frame-ancestors 'none'")

	// Verify Referrer-Policy
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))

	// Verify Permissions-Policy
	pp := rec.Header().Get("Permissions-Policy")
	assert.Contains(t, pp, "camera=()")
	assert.Contains(t, pp, "payment=(self)")
}

func TestSecurityHeaders_CustomCSP(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	customCSP := "default-src 'self'; script-src 'self' https://cdn.example.com"
	handler := SecurityHeaders(SecurityHeadersConfig{
		ContentSecurityPolicy: customCSP,
	})(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	err := handler(c)
	assert.NoError(t, err)

	assert.Equal(t, customCSP, rec.Header().Get("Content-Security-Policy"))
	// Other headers should still have defaults
	assert.NotEmpty(t, rec.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
}

func TestCORSConfig(t *testing.T) {
	cfg := CORSConfig()

	assert.Contains(t, cfg.AllowOrigins, "https://squadscore.io")
	assert.Contains(t, cfg.AllowMethods, http.MethodPost)
	assert.Contains(t, cfg.AllowHeaders, "Authorization")
	assert.True(t, cfg.AllowCredentials)
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(60, 3)

	e := echo.New()
	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	e := echo.New()
	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// First request consumes the burst token
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Real-IP", "10.0.0.2")
	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Second immediate request is throttled
	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Real-IP", "10.0.0.2")
	rec = httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiter_SeparateIPs(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	e := echo.New()
	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Real-IP", "10.0.0.3")
	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Different IP gets its own bucket
	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Real-IP", "10.0.0.4")
	rec = httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
