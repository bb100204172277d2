package middlewares

import (
	"net/http"
	"strings"

	"sheetbase/internal/repositories"
	"sheetbase/internal/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// Authenticate requires a valid, non-revoked access token and stores the
// caller's user id and token id in the request context.
func Authenticate(cache *repositories.CacheRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or malformed Authorization header"})
			return
		}

		claims, err := utils.VerifyJWT(tokenStr, utils.AccessTokenSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		revoked, err := cache.IsBlacklisted(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set("userId", claims.Subject)
		c.Set("jti", claims.ID)
		c.Next()
	}
}

// OptionalAuthenticate resolves the caller's identity when a valid token is
// present and lets anonymous callers through. Public routes pair it with
// RequireView, which applies the configured minimum role.
func OptionalAuthenticate(cache *repositories.CacheRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := utils.VerifyJWT(tokenStr, utils.AccessTokenSecret)
		if err != nil {
			c.Next()
			return
		}
		if revoked, err := cache.IsBlacklisted(c.Request.Context(), claims.ID); err != nil || revoked {
			c.Next()
			return
		}

		c.Set("userId", claims.Subject)
		c.Set("jti", claims.ID)
		c.Next()
	}
}
