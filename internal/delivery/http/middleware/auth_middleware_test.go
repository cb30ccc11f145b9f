package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthhub-backend/config"
	"healthhub-backend/internal/delivery/http/middleware"
	"healthhub-backend/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newMiddleware() *middleware.AuthMiddleware {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
	return middleware.NewAuthMiddleware(jwtService, redis.NewClient(&redis.Options{}))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := newMiddleware()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	rec := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	m := newMiddleware()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	m := newMiddleware()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthenticate_AnonymousPassesThrough(t *testing.T) {
	m := newMiddleware()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := middleware.GetUserIDFromContext(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	rec := httptest.NewRecorder()

	m.OptionalAuthenticate(next).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuthenticate_InvalidTokenStaysAnonymous(t *testing.T) {
	m := newMiddleware()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := middleware.GetUserIDFromContext(r.Context())
		assert.False(t, ok)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	m.OptionalAuthenticate(next).ServeHTTP(rec, req)

	assert.True(t, called)
}
