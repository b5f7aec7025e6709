// session/decoder.go
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cast"
)

// Long claim name some identity servers use for the role.
const roleClaimURI = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"

// Claims is the decoded token payload. The console never verifies the
// signature; the upstream backend is the authority and rejects forged
// tokens with 401s. The claims only drive routing and display.
type Claims map[string]interface{}

// Decode extracts the claims from a bearer token. Malformed tokens yield
// nil, never an error.
func Decode(token string) Claims {
	if token == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return Claims(claims)
}

// ExtractRole resolves the role claim no matter how it is named or shaped.
// Probe order: short "role" string, URI-named string, then the first
// element of either as an array. Empty string means unresolved.
func ExtractRole(claims Claims) string {
	if claims == nil {
		return ""
	}
	if s, ok := claims["role"].(string); ok && s != "" {
		return s
	}
	if s, ok := claims[roleClaimURI].(string); ok && s != "" {
		return s
	}
	if arr, ok := claims["role"].([]interface{}); ok && len(arr) > 0 {
		if s, ok := arr[0].(string); ok {
			return s
		}
	}
	if arr, ok := claims[roleClaimURI].([]interface{}); ok && len(arr) > 0 {
		if s, ok := arr[0].(string); ok {
			return s
		}
	}
	return ""
}

// Subject returns the username carried in the token, if any.
func Subject(claims Claims) string {
	if claims == nil {
		return ""
	}
	if s, ok := claims["sub"].(string); ok && s != "" {
		return s
	}
	if s, ok := claims["unique_name"].(string); ok && s != "" {
		return s
	}
	return ""
}

// ExpiresAt returns the exp claim as a time, or the zero time when the
// token has no expiry.
func ExpiresAt(claims Claims) time.Time {
	if claims == nil {
		return time.Time{}
	}
	v, ok := claims["exp"]
	if !ok {
		return time.Time{}
	}
	secs, err := cast.ToInt64E(v)
	if err != nil || secs == 0 {
		return time.Time{}
	}
	return time.Unix(secs, 0)
}

// IsExpired reports whether the exp claim is in the past. A token without
// exp never expires from this component's point of view; server 401s still
// force re-auth.
func IsExpired(claims Claims, now time.Time) bool {
	exp := ExpiresAt(claims)
	if exp.IsZero() {
		return false
	}
	return !now.Before(exp)
}
