package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/model"
	"github.com/evgrid/console/session"
	"github.com/evgrid/console/util"
)

const (
	ctxKeyToken  = "sessionToken"
	ctxKeyClaims = "sessionClaims"
	ctxKeyRole   = "sessionRole"
)

// ExtractToken extracts the token from the Authorization header.
// Expected format: "Bearer <token>"
func ExtractToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("invalid authorization header format")
	}
	return strings.TrimPrefix(authHeader, "Bearer "), nil
}

// RequireAuth is the authentication-presence gate: a decodable, unexpired
// bearer must be attached. The token is not signature-verified here; the
// upstream backend rejects forgeries, this gate only derives the session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", console_errors.ErrUnauthorized)
			c.Abort()
			return
		}

		token, err := ExtractToken(authHeader)
		if err != nil {
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid authorization header", err)
			c.Abort()
			return
		}

		claims := session.Decode(token)
		if claims == nil {
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token", console_errors.ErrUnauthorized)
			c.Abort()
			return
		}
		if session.IsExpired(claims, time.Now()) {
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token", console_errors.ErrSessionExpired)
			c.Abort()
			return
		}

		c.Set(ctxKeyToken, token)
		c.Set(ctxKeyClaims, claims)
		c.Set(ctxKeyRole, session.ExtractRole(claims))
		c.Next()
	}
}

// RequireRole is the inner gate, evaluated only after RequireAuth passed.
func RequireRole(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleFromContext(c)
		if !model.Role(role).Known() {
			util.RespondWithError(c, http.StatusForbidden, "Role not resolved", console_errors.ErrRoleUnresolved)
			c.Abort()
			return
		}

		for _, a := range allowed {
			if string(a) == role {
				c.Next()
				return
			}
		}

		util.RespondWithError(c, http.StatusForbidden, "Insufficient permissions", console_errors.ErrForbidden)
		c.Abort()
	}
}

// TokenFromContext retrieves the caller's bearer for upstream forwarding.
func TokenFromContext(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyToken); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ClaimsFromContext retrieves the decoded session claims.
func ClaimsFromContext(c *gin.Context) session.Claims {
	if v, ok := c.Get(ctxKeyClaims); ok {
		if claims, ok := v.(session.Claims); ok {
			return claims
		}
	}
	return nil
}

// RoleFromContext retrieves the derived role, empty when unresolved.
func RoleFromContext(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
