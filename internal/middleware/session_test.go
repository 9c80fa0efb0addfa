package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManagerRoundTrip(t *testing.T) {
	sessions := NewSessionManager("secret", true, time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, sessions.SetToken(rec, httptest.NewRequest(http.MethodPost, "/", nil), "abc"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	assert.Equal(t, "abc", sessions.Token(req))
}

func TestSessionManagerRejectsForeignCookie(t *testing.T) {
	issuer := NewSessionManager("one-secret", false, time.Hour)
	verifier := NewSessionManager("other-secret", false, time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, issuer.SetToken(rec, httptest.NewRequest(http.MethodPost, "/", nil), "abc"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	assert.Empty(t, verifier.Token(req))
}

func TestSessionManagerClear(t *testing.T) {
	sessions := NewSessionManager("secret", false, time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, sessions.SetToken(rec, httptest.NewRequest(http.MethodPost, "/", nil), "abc"))
	cookie := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	require.NoError(t, sessions.Clear(rec, req))

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, SessionName, cleared[0].Name)
	assert.True(t, cleared[0].MaxAge < 0)
}
