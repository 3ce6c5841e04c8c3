package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brandtools-be/internal/jwt"
)

// protectedPrefixes are the tool and onboarding pages that require a valid
// session before they render.
var protectedPrefixes = []string{
	"/onboarding",
	"/seo-audit",
	"/market-analysis",
	"/brandbook",
	"/content-ideas",
	"/landing-page-generator",
	"/linkedin-post-generator",
}

func isProtectedPage(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// PageGuard redirects unauthenticated requests for protected pages to the
// home page. Requests for any other path pass through unchanged. An invalid
// cookie is cleared on the way out so the browser stops sending it.
func PageGuard(jwtService *jwt.JWTService, cookieSecure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isProtectedPage(c.Request.URL.Path) {
			c.Next()
			return
		}

		token, err := c.Cookie(AuthCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		if _, err := jwtService.ValidateToken(token); err != nil {
			ClearSessionCookie(c, cookieSecure)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
