package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed session token")

// Claims is the subset of the backend's access token the console inspects.
// The token is issued and verified by the backend; the console only decodes
// it to know who is logged in and when the session lapses, so parsing is
// deliberately unverified.
type Claims struct {
	Email string `json:"sub"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Inspect decodes the token without signature verification.
func Inspect(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// ExpiresAt returns the token's expiry, false when the token carries none.
func ExpiresAt(token string) (time.Time, bool) {
	claims, err := Inspect(token)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// IsExpired reports whether the token has lapsed. Tokens without an expiry
// claim are treated as live; the backend still rejects them with 401 if not.
func IsExpired(token string, now time.Time) bool {
	exp, ok := ExpiresAt(token)
	if !ok {
		return false
	}
	return now.After(exp)
}
