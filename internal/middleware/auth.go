package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	portsrepo "github.com/mkhumalo/site_safety_app/internal/core/ports/repositories"
	"github.com/mkhumalo/site_safety_app/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// and checks them against the persisted session. A token issued before a
// logout is rejected because the session document no longer matches.
func AuthMiddleware(jwtSecret string, store portsrepo.DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Subject == "" {
			logger.Error("Username (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		// The persisted session is authoritative. Logout clears it, which
		// invalidates every token issued for that user.
		session, err := store.LoadSession(c.Request.Context())
		if err != nil || session == nil || session.Username != claims.Subject {
			logger.Warn("Token does not match an active session", "subject", claims.Subject)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
			return
		}

		c.Set(string(usernameKey), claims.Subject)
		ctxWithUser := context.WithValue(c.Request.Context(), usernameKey, claims.Subject)
		enrichedLogger := logger.With(slog.String("username", claims.Subject))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}
