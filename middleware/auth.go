package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "localserve/database/repository/user"
	"localserve/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates the Bearer token, checks its hash against
// the Redis auth cache (falling back to the stored hash on the account), and
// sets "userID" and "userRole" in the request context.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

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

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		// Cache hit: the hash either matches or the token was revoked.
		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			usr, err := repo.GetByIDWithProjection(userID, bson.M{"id": 1, "role": 1})
			if err != nil || usr == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
				return
			}
			c.Set("userID", userID)
			c.Set("userRole", usr.Role)
			c.Next()
			return
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("auth cache read failed, falling back to DB", zap.Error(err))
		}

		// Cache miss: compare against the hash stored on the account.
		usr, err := repo.GetByIDWithProjection(userID, bson.M{"id": 1, "role": 1, "token_hash": 1})
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		if err := authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("auth cache write failed", zap.Error(err))
		}

		c.Set("userID", userID)
		c.Set("userRole", usr.Role)
		c.Next()
	}
}
