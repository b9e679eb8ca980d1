package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueSession("admin@neokudilonga.ao", "admin", "Ana", "https://pic.example.com/a.jpg")
	require.NoError(t, err)

	claims, err := ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@neokudilonga.ao", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "Ana", claims["name"])
}

func TestParseSessionRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := IssueSession("admin@neokudilonga.ao", "admin", "", "")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseSession(token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestParseSessionRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ParseSession("not.a.token")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionFromRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueSession("admin@neokudilonga.ao", "admin", "", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})

	claims, err := SessionFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "admin@neokudilonga.ao", claims["email"])

	_, err = SessionFromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSetAndClearSessionCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetSessionCookie(w, "tok")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	w = httptest.NewRecorder()
	ClearSessionCookie(w)
	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
