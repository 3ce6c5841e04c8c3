package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandtools-be/internal/jwt"
	"brandtools-be/internal/middleware"
)

func newGuardedRouter(jwtService *jwt.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.PageGuard(jwtService, false))

	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	router.GET("/", ok)
	router.GET("/pricing", ok)
	router.GET("/seo-audit", ok)
	router.GET("/brandbook", ok)
	router.GET("/onboarding/redirect", ok)
	return router
}

func get(router *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPageGuardRedirectsWithoutCookie(t *testing.T) {
	router := newGuardedRouter(jwt.NewJWTService("test-secret", time.Hour))

	for _, path := range []string{"/seo-audit", "/brandbook", "/onboarding/redirect"} {
		w := get(router, path, "")
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/", w.Header().Get("Location"), path)
	}
}

func TestPageGuardPassesUnprotectedPaths(t *testing.T) {
	router := newGuardedRouter(jwt.NewJWTService("test-secret", time.Hour))

	for _, path := range []string{"/", "/pricing"} {
		w := get(router, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestPageGuardClearsInvalidCookie(t *testing.T) {
	router := newGuardedRouter(jwt.NewJWTService("test-secret", time.Hour))

	w := get(router, "/seo-audit", "not-a-valid-token")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cleared := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.AuthCookieName {
			assert.Empty(t, cookie.Value)
			assert.LessOrEqual(t, cookie.MaxAge, 0)
			cleared = true
		}
	}
	assert.True(t, cleared, "expected the invalid cookie to be cleared")
}

func TestPageGuardPassesValidSession(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	router := newGuardedRouter(jwtService)

	token, err := jwtService.GenerateToken("user-1", "user@example.com", "User")
	require.NoError(t, err)

	w := get(router, "/seo-audit", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", middleware.AuthMiddleware(jwtService), func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		require.True(t, ok)
		c.String(http.StatusOK, userID)
	})

	// No cookie
	w := get(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Invalid cookie
	w = get(router, "/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid cookie puts the identity into the request context
	token, err := jwtService.GenerateToken("user-42", "user@example.com", "User")
	require.NoError(t, err)
	w = get(router, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())
}
