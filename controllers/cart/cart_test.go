package cartControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookie {
			return cookie
		}
	}
	t.Fatalf("no %s cookie in response", SessionCookie)
	return nil
}

func TestSessionIDPrefersHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	c.Request.Header.Set(SessionHeader, "from-header")
	c.Request.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})

	assert.Equal(t, "from-header", SessionID(c))
}

func TestSessionIDFallsBackToCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	c.Request.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})

	assert.Equal(t, "from-cookie", SessionID(c))

	c.Request = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	assert.Empty(t, SessionID(c))
}

func TestEnsureSessionMintsSecureCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/cart/items", nil)

	id := ensureSession(c)
	require.NotEmpty(t, id)

	cookie := sessionCookieFrom(t, w)
	assert.Equal(t, id, cookie.Value)
	assert.True(t, cookie.Secure)
	assert.Equal(t, id, w.Header().Get(SessionHeader))
}

func TestEnsureSessionInsecureCookieForLocalDev(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("COOKIE_INSECURE", "true")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/cart/items", nil)

	ensureSession(c)
	assert.False(t, sessionCookieFrom(t, w).Secure)
}

func TestEnsureSessionKeepsExistingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/cart/items", nil)
	c.Request.Header.Set(SessionHeader, "existing")

	assert.Equal(t, "existing", ensureSession(c))
}
