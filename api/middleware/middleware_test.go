package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bakery/api/ctxutil"
	"bakery/config"
	"bakery/domain/user"
	"bakery/infrastructure/persistence"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestIDMiddleware())
	var fromContext string
	engine.GET("/", func(c *gin.Context) {
		fromContext = persistence.RequestIDFromContext(c.Request.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := serve(engine, req)

	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-42", fromContext)

	rec = serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestRecoveryMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestIDMiddleware(), RecoveryMiddleware())
	engine.GET("/", func(*gin.Context) { panic("boom") })

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestCORSMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(CORSMiddleware(&config.CORSConfig{
		AllowOrigins: []string{"https://boulangerie.example.com"},
		AllowMethods: []string{"GET", "PUT"},
		MaxAge:       86400,
	}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://boulangerie.example.com")
	rec := serve(engine, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://boulangerie.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, PUT", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://other.example.com")
	rec = serve(engine, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(RateLimitMiddleware(&config.RateLimitConfig{Enabled: true, Rate: 0.001, Burst: 2}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(engine, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOO_MANY_REQUESTS")
}

type stubVerifier map[string]*user.User

func (s stubVerifier) Verify(token string) (*user.User, error) {
	if u, ok := s[token]; ok {
		return u, nil
	}
	return nil, errors.New("invalid token")
}

func TestAuthMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(AuthMiddleware(stubVerifier{"good": user.Admin()}))
	engine.GET("/public", func(c *gin.Context) { c.String(http.StatusOK, ctxutil.CurrentUser(c).Username()) })
	engine.GET("/admin", RequireAuth(), func(c *gin.Context) { c.String(http.StatusOK, ctxutil.CurrentUser(c).Username()) })

	tests := []struct {
		name   string
		path   string
		header string
		status int
		body   string
	}{
		{"public without token", "/public", "", http.StatusOK, user.AnonymousUsername},
		{"public with bad token", "/public", "Bearer bad", http.StatusOK, user.AnonymousUsername},
		{"admin with token", "/admin", "Bearer good", http.StatusOK, user.AdminUsername},
		{"admin lowercase scheme", "/admin", "bearer good", http.StatusOK, user.AdminUsername},
		{"admin without token", "/admin", "", http.StatusUnauthorized, ""},
		{"admin with bad token", "/admin", "Bearer bad", http.StatusUnauthorized, ""},
		{"admin basic scheme", "/admin", "Basic good", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(engine, req)
			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}
