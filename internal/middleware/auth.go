package middleware

import (
	"strconv"
	"strings"

	"refspot_backend/internal/auth"
	"refspot_backend/internal/logger"
	"refspot_backend/pkg/apperrors"
	"refspot_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "session"

// AuthMiddleware validates the session token and stashes the user's
// identity in the gin context. Browser clients carry the token in the
// session cookie, API clients in the Authorization header.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(string(contextkeys.UserIDContextKey), claims.UserID)
		c.Set(string(contextkeys.UsernameContextKey), claims.Username)

		ctx := logger.WithUserID(c.Request.Context(),
			strconv.FormatUint(uint64(claims.UserID), 10))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// GetUserID returns the authenticated user id, or 0 when the request is
// anonymous.
func GetUserID(c *gin.Context) uint {
	if val, exists := c.Get(string(contextkeys.UserIDContextKey)); exists {
		if userID, ok := val.(uint); ok {
			return userID
		}
	}
	return 0
}
