// Package auth issues and decodes the self-contained session tokens used by
// the gateway. A token is an HS256-signed JWT carrying the user id, role,
// the keep-signed flag, and an absolute expiry timestamp fixed at issuance.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/newsgate/internal/common"
)

// Claims are the JWT claims of a session token.
//
// ExpireAt is an RFC3339 timestamp computed once at sign-in and never
// refreshed. It deliberately lives in a custom claim instead of the
// registered "exp": the gateway owns expiry policy (forced logout with
// cookie clearing), so token decoding must not reject expired tokens
// on its own.
type Claims struct {
	jwt.RegisteredClaims
	UserID     int64  `json:"uid"`
	Role       string `json:"role"`
	KeepSigned bool   `json:"keepSigned"`
	ExpireAt   string `json:"expireAt"`
}

// Session is the decoded view of a token, re-exposing exactly what was
// embedded at issuance.
type Session struct {
	UserID     int64
	Role       string
	KeepSigned bool
	ExpiresAt  time.Time
}

// Expired reports whether the session's embedded expiry lies before now.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s.Role == "admin"
}

// IssueToken signs a session token for the given identity. The expiry is
// now + validity; the caller chooses validity based on the keep-signed flag.
func IssueToken(userID int64, role string, keepSigned bool, secret []byte, validity time.Duration) (string, error) {
	expireAt := time.Now().Add(validity)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:     userID,
		Role:       role,
		KeepSigned: keepSigned,
		ExpireAt:   expireAt.UTC().Format(time.RFC3339),
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and returns the decoded session.
// Malformed or tampered tokens return common.ErrInvalidToken; expiry is not
// evaluated here.
func ParseToken(tokenString string, secret []byte) (*Session, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	expiresAt, err := time.Parse(time.RFC3339, claims.ExpireAt)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	return &Session{
		UserID:     claims.UserID,
		Role:       claims.Role,
		KeepSigned: claims.KeepSigned,
		ExpiresAt:  expiresAt,
	}, nil
}
