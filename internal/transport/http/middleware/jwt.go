package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"fitweek/internal/pkg/jwtutil"
	"fitweek/internal/transport/http/response"
)

const (
	ContextUserIDKey    = "user_id"
	ContextUsernameKey  = "username"
	ContextSessionIDKey = "session_id"
)

// SessionChecker answers whether a session id from a token is still live.
type SessionChecker interface {
	Exists(ctx context.Context, sessionID string) (bool, error)
}

// AuthJWT validates the bearer token and then requires its session to still
// exist in the session store. A structurally valid token whose session was
// revoked by logout is rejected.
func AuthJWT(secret string, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Redirect(c, 401, response.CodeUnauthorized, "missing authorization header", "/login")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Redirect(c, 401, response.CodeUnauthorized, "invalid authorization scheme", "/login")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Redirect(c, 401, response.CodeUnauthorized, "invalid or expired token", "/login")
			c.Abort()
			return
		}

		alive, err := sessions.Exists(c.Request.Context(), claims.SessionID)
		if err != nil {
			response.Error(c, 500, response.CodeInternalServer, "session lookup failed")
			c.Abort()
			return
		}
		if !alive {
			response.Redirect(c, 401, response.CodeUnauthorized, "session expired or logged out", "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Set(ContextSessionIDKey, claims.SessionID)
		c.Next()
	}
}

// UserID pulls the authenticated user id out of the gin context.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// SessionID pulls the current session id out of the gin context.
func SessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextSessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
