package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The bearer token is externally issued and verified server-side; the client
// only needs the payload claims, so parsing is deliberately unverified.
var tokenParser = jwt.NewParser()

// DecodeToken extracts the claim map from the payload segment of a bearer
// token without verifying the signature. Malformed input (wrong segment
// count, invalid base64, invalid JSON) returns an error, never panics.
func DecodeToken(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := tokenParser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return claims, nil
}

// IsTokenExpired reports whether the token should be treated as expired.
// A token that fails to decode or carries no exp claim is expired. The exp
// claim is seconds since epoch; the comparison is done in milliseconds.
func IsTokenExpired(token string) bool {
	expiry, ok := TokenExpiry(token)
	if !ok {
		return true
	}
	return time.Now().UnixMilli() >= expiry.UnixMilli()
}

// TokenExpiry returns the absolute expiry of the token, or ok=false when the
// token cannot be decoded or has no exp claim.
func TokenExpiry(token string) (time.Time, bool) {
	claims, err := DecodeToken(token)
	if err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
