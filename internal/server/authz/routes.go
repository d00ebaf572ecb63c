// Package authz decides whether a request path may be served for a given
// session. Decisions are purely path-and-role based; no resource data is
// consulted here.
package authz

import (
	"strings"

	"github.com/dmitrijs2005/newsgate/internal/server/auth"
)

// Verdict is the outcome of a route check.
type Verdict int

const (
	// Allow lets the request through to its handler.
	Allow Verdict = iota
	// DenyUnauthenticated means the path needs a session and there is none.
	DenyUnauthenticated
	// DenyForbidden means the session lacks the required role.
	DenyForbidden
)

// Rules maps path-prefix groups to the predicate they require.
// A path matching both groups is subject to both checks.
type Rules struct {
	// Protected prefixes require any authenticated session.
	Protected []string
	// AdminOnly prefixes additionally require the admin role.
	AdminOnly []string
}

// DefaultRules are the gateway's route rules.
func DefaultRules() Rules {
	return Rules{
		Protected: []string{"/admin", "/user", "/dashboard", "/news"},
		AdminOnly: []string{"/admin"},
	}
}

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Decide evaluates the rules for path. sess is nil for anonymous requests.
// The unauthenticated check runs first, so an anonymous request to an
// admin-only path is reported as DenyUnauthenticated, not DenyForbidden.
func (r Rules) Decide(path string, sess *auth.Session) Verdict {
	if matchesAny(path, r.Protected) && sess == nil {
		return DenyUnauthenticated
	}

	if matchesAny(path, r.AdminOnly) {
		if sess == nil {
			return DenyUnauthenticated
		}
		if !sess.IsAdmin() {
			return DenyForbidden
		}
	}

	return Allow
}
