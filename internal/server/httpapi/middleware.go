package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/newsgate/internal/server/auth"
	"github.com/dmitrijs2005/newsgate/internal/server/authz"
)

type ctxKey string

const sessionKey ctxKey = "session"

// SessionFromContext returns the decoded session attached by the gateway,
// or nil for anonymous requests.
func SessionFromContext(ctx context.Context) *auth.Session {
	sess, _ := ctx.Value(sessionKey).(*auth.Session)
	return sess
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestLog tags every request with an id and logs method, path,
// status and duration on completion.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"request_id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}

// sessionGate decodes the session cookie ahead of any protected handling.
//
// Per-request states:
//   - no token, or a token that fails signature/shape checks: the request
//     proceeds anonymously. A tampered token must not grant an identity,
//     but it must not error either.
//   - embedded expiry in the past: terminal. Both cookie variants are
//     force-cleared and the request is redirected to the error view with
//     the SessionExpired reason. Route and resource authorization never run.
//   - valid token: the decoded session is attached to the context.
func (s *Server) sessionGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := readSessionToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		if sess.Expired(time.Now()) {
			clearSessionCookies(w)
			s.redirectError(w, r, ReasonSessionExpired)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// routeGuard applies the path-prefix rules before any resource lookup.
func (s *Server) routeGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())

		switch s.rules.Decide(r.URL.Path, sess) {
		case authz.DenyUnauthenticated:
			s.redirectError(w, r, ReasonSessionExpired)
		case authz.DenyForbidden:
			s.redirectError(w, r, ReasonAccessDenied)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// redirectError sends the caller to the error view with a reason code.
func (s *Server) redirectError(w http.ResponseWriter, r *http.Request, reason Reason) {
	http.Redirect(w, r, "/error?error="+string(reason), http.StatusFound)
}
