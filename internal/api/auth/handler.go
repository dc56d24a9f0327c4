package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront-app/internal/api/apierr"
	"storefront-app/internal/app/http/middleware"
	"storefront-app/internal/domain/access"
	"storefront-app/internal/domain/users"
	"storefront-app/internal/repository"
)

// UserResponse is the session view of an account: the stored user plus the
// capabilities its role and grants resolve to.
type UserResponse struct {
	users.User
	Capabilities []string `json:"capabilities"`
}

func NewUserResponse(u users.User) UserResponse {
	return UserResponse{User: u, Capabilities: access.CapabilitiesFor(u)}
}

// IssueToken signs a session token for u.
func IssueToken(u users.User, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  u.ID,
		"username": u.Username,
		"role":     u.Role,
		"exp":      time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// POST /login
func Login(repo repository.UserRepository, secret string, ttl time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}

		user, err := repo.GetByUsername(c.Request.Context(), strings.TrimSpace(input.Username))
		if err != nil {
			if repository.IsNotFound(err) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			apierr.Write(c, logger, err, "Failed to log in")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			logger.Warn("Failed login", zap.String("username", user.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		tokenString, err := IssueToken(*user, secret, ttl)
		if err != nil {
			logger.Error("Could not sign token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
			return
		}

		logger.Info("User logged in", zap.Uint("user_id", user.ID))
		c.JSON(http.StatusOK, gin.H{"token": tokenString, "user": NewUserResponse(*user)})
	}
}

// GET /me
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, NewUserResponse(u))
	}
}
