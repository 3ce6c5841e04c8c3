package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandtools-be/internal/jwt"
)

// AuthCookieName is the session cookie carrying the signed token
const AuthCookieName = "auth-token"

// Session cookie lifetime matches the token expiry (7 days)
const cookieMaxAge = 7 * 24 * 60 * 60

// SetSessionCookie attaches the session token as an HTTP-only cookie
func SetSessionCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, token, cookieMaxAge, "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie immediately
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, "", -1, "/", "", secure, true)
}

// AuthMiddleware validates the session cookie and puts the verified identity
// into the request context. Handlers read it back with UserID instead of
// re-verifying the token themselves.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)

		c.Next()
	}
}

// UserID returns the authenticated user id set by AuthMiddleware
func UserID(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}
