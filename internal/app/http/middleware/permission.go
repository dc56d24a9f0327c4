package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-app/internal/domain/access"
	"storefront-app/internal/domain/users"
	"storefront-app/internal/repository"
)

const userKey = "user"

// LoadUser resolves the token's user_id to the stored account, so deleted
// accounts and changed permissions take effect on the next request.
func LoadUser(repo repository.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetUint("user_id")
		if id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		u, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if !repository.IsNotFound(err) {
				logger.Error("Failed to load session user", zap.Uint("user_id", id), zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(userKey, *u)
		c.Next()
	}
}

// RequirePermission aborts with 403 unless the loaded user holds capability.
func RequirePermission(capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !access.HasPermission(u, capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by LoadUser.
func CurrentUser(c *gin.Context) (users.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return users.User{}, false
	}
	u, ok := v.(users.User)
	return u, ok
}
