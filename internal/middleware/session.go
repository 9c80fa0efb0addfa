package middleware

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie the webview keeps the bearer token in
const SessionName = "gramin-session"

const sessionKeyToken = "token"

// SessionManager stores the signed-in token in a signed cookie so the
// embedded webview does not have to manage it.
type SessionManager struct {
	store *sessions.CookieStore
}

// NewSessionManager derives a 32-byte signing key from secret. The secret
// must be the same on every instance.
func NewSessionManager(secret string, secure bool, maxAge time.Duration) *SessionManager {
	key := sha256.Sum256([]byte(secret))

	store := sessions.NewCookieStore(key[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

// SetToken writes token into the session cookie
func (m *SessionManager) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	session, err := m.store.Get(r, SessionName)
	if err != nil && session == nil {
		return err
	}
	session.Values[sessionKeyToken] = token
	return session.Save(r, w)
}

// Token returns the token held by the session cookie, or "" when there is none
// or the cookie fails verification.
func (m *SessionManager) Token(r *http.Request) string {
	session, err := m.store.Get(r, SessionName)
	if err != nil || session == nil {
		return ""
	}
	token, _ := session.Values[sessionKeyToken].(string)
	return token
}

// Clear expires the session cookie
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, err := m.store.Get(r, SessionName)
	if err != nil && session == nil {
		return err
	}
	delete(session.Values, sessionKeyToken)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
