package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pages := r.Group("/admin")
	pages.Use(RequireAdminPage())
	pages.GET("/*page", func(c *gin.Context) {
		c.String(http.StatusOK, "page")
	})
	return r
}

func TestRequireAdminPageRedirectsToLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newPageRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/books", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login?redirect_to=%2Fadmin%2Fbooks", w.Header().Get("Location"))
}

func TestRequireAdminPageExemptsLoginPage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newPageRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminPagePassesWithSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newPageRouter()

	token, err := auth.IssueSession("admin@neokudilonga.ao", "admin", "Admin", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRejectsWithoutSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(RequireAdmin())
	api.GET("/orders", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminSetsContextFromClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(RequireAdmin())
	api.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString("admin_email"),
			"role":  c.GetString("admin_role"),
		})
	})

	token, err := auth.IssueSession("admin@neokudilonga.ao", "super_admin", "Admin", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@neokudilonga.ao")
	assert.Contains(t, w.Body.String(), "super_admin")
}
