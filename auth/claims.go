// Package auth provides token inspection helpers for the Underboss SDK.
package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims encodes the JWT claims embedded in Underboss access tokens.
//
// This is a DTO matching the server's token contract; the SDK never verifies
// signatures (it has no key material) and treats decoded claims as
// diagnostics only.
type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"unm,omitempty"`

	jwt.RegisteredClaims
}

// ErrNotAJWT is returned when the token does not look like a JWT at all.
var ErrNotAJWT = errors.New("auth: token is not a JWT")

// IsJWTLike reports whether the token has the three base64url segments of a
// JWT.
func IsJWTLike(token string) bool {
	t := strings.TrimSpace(token)
	if t == "" {
		return false
	}
	return strings.Count(t, ".") >= 2
}

// DecodeClaims parses the token's claims without verifying the signature.
func DecodeClaims(token string) (*Claims, error) {
	if !IsJWTLike(token) {
		return nil, ErrNotAJWT
	}
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(strings.TrimSpace(token), claims); err != nil {
		return nil, err
	}
	return claims, nil
}
