package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"agendly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthClientMiddleware authenticates requests bearing a client token.
func JWTAuthClientMiddleware() gin.HandlerFunc {
	return jwtAuthMiddleware("client")
}

// JWTAuthProviderMiddleware authenticates requests bearing a provider token.
func JWTAuthProviderMiddleware() gin.HandlerFunc {
	return jwtAuthMiddleware("provider")
}

// jwtAuthMiddleware validates the bearer token signature and role, then
// checks the token hash against the auth cache so revoked or superseded
// tokens are rejected even before expiry. On success it sets "userID".
func jwtAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Wrong token scope"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		cacheKey := utils.AuthCachePrefix + role + ":" + subject
		cachedHash, err := utils.GetAuthCacheClient().Get(ctx, cacheKey).Result()
		if err == redis.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		}
		if err != nil {
			// Cache unreachable: the signature already checked out, so let the
			// request through rather than fail the whole API.
			utils.GetLogger().Warn("auth cache lookup failed", zap.Error(err))
			c.Set("userID", subject)
			c.Next()
			return
		}
		if cachedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		c.Set("userID", subject)
		c.Next()
	}
}
