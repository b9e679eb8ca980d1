package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/auth"
)

// RequireAdmin guards JSON API routes. Requests without a valid session
// cookie get a 401.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.SessionFromRequest(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		if email, ok := claims["email"].(string); ok {
			c.Set("admin_email", email)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set("admin_role", role)
		}
		c.Next()
	}
}

// RequireAdminPage guards the dashboard pages. Unauthenticated browsers are
// sent to the login page with the original path in redirect_to. The login
// page itself is exempt.
func RequireAdminPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/admin/login" {
			c.Next()
			return
		}

		if _, err := auth.SessionFromRequest(c.Request); err != nil {
			target := "/admin/login?redirect_to=" + url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}
