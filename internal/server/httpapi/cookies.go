package httpapi

import (
	"net/http"
	"time"
)

// Session cookie names. The secure variant is set on HTTPS deployments;
// forced logout always clears both, since the gateway cannot know which
// one an old client still holds.
const (
	SessionCookieName       = "newsgate.session-token"
	SecureSessionCookieName = "__Secure-newsgate.session-token"
)

// sessionCookieName picks the variant matching the deployment.
func (s *Server) sessionCookieName() string {
	if s.secureCookies {
		return SecureSessionCookieName
	}
	return SessionCookieName
}

// setSessionCookie attaches the session token to the response. The cookie
// lifetime mirrors the token's embedded expiry.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.sessionCookieName(),
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookies expires both cookie variants immediately.
func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{SessionCookieName, SecureSessionCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:    name,
			Value:   "",
			Path:    "/",
			Expires: time.Unix(0, 0),
			MaxAge:  -1,
		})
	}
}

// readSessionToken extracts the session token from either cookie variant,
// preferring the secure one.
func readSessionToken(r *http.Request) (string, bool) {
	for _, name := range []string{SecureSessionCookieName, SessionCookieName} {
		if c, err := r.Cookie(name); err == nil && c.Value != "" {
			return c.Value, true
		}
	}
	return "", false
}
