package utils // package utils provides helpers for token creation and password hashing

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// Session tokens are valid for a fixed 24 hours. There is no refresh
// mechanism; the dashboard re-prompts for login after expiry.
const sessionTTL = 24 * time.Hour

// SessionToken represents a signed JWT session token along with its expiry.
// The Token field contains the serialized JWT string sent to the dashboard
// in the login response and echoed back in the Authorization header.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for an admin. The subject is
// the admin's email (emails are the stable identity of dashboard accounts);
// the role claim drives the main-only route checks.
func NewSessionToken(secret, email, role string) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(sessionTTL)
	claims := jwt.MapClaims{
		"sub":   email,
		"email": email,
		"role":  role,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}
