package middlewares

import (
	"net/http"

	"sheetbase/internal/repositories"
	"sheetbase/internal/services"
	"sheetbase/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func contextUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, false
	}
	switch v := raw.(type) {
	case uuid.UUID:
		return v, true
	case string:
		parsed, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, false
		}
		return parsed, true
	default:
		return uuid.Nil, false
	}
}

// RequireManage checks that the authenticated caller holds the management
// tier. Use after Authenticate. The role is read from storage, not from the
// token, so demotions take effect immediately.
func RequireManage(userRepo *repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		user, err := userRepo.FindUserByID(userID)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}

		if !utils.CanManage(user.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. Management privileges required."})
			return
		}

		c.Set("authenticatedUser", user)
		c.Next()
	}
}

// RequireView enforces the configured minimum view role. Use after
// OptionalAuthenticate: an absent identity is checked as anonymous, which
// passes only when the minimum role is the lowest tier.
func RequireView(userRepo *repositories.UserRepository, settings *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := utils.RoleAnonymous
		if userID, ok := contextUserID(c); ok {
			user, err := userRepo.FindUserByID(userID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to resolve caller"})
				return
			}
			if user != nil {
				role = user.Role
			}
		}

		if !utils.CanView(role, settings.MinViewRole()) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You do not have permission to view this data."})
			return
		}

		c.Next()
	}
}
