package users

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront-app/internal/api/apierr"
	"storefront-app/internal/api/auth"
	"storefront-app/internal/domain/access"
	"storefront-app/internal/domain/users"
	"storefront-app/internal/repository"
)

const minPasswordLength = 8

// GET /users
func ListUsers(repo repository.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			apierr.Write(c, logger, err, "Failed to load users")
			return
		}
		out := make([]auth.UserResponse, 0, len(list))
		for _, u := range list {
			out = append(out, auth.NewUserResponse(u))
		}
		c.JSON(http.StatusOK, out)
	}
}

// POST /users
//
// Permissions are fixed at creation. Admins get every capability.
func CreateUser(repo repository.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username    string   `json:"username" binding:"required"`
			Password    string   `json:"password" binding:"required"`
			Role        string   `json:"role"`
			Permissions []string `json:"permissions"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			apierr.BadRequest(c, "Username and password are required")
			return
		}

		username := strings.TrimSpace(input.Username)
		if username == "" {
			apierr.BadRequest(c, "Username is required")
			return
		}
		if len(input.Password) < minPasswordLength {
			apierr.BadRequest(c, "Password must be at least 8 characters long")
			return
		}
		role := input.Role
		if role == "" {
			role = users.RoleStaff
		}
		if !users.IsValidRole(role) {
			apierr.BadRequest(c, "Role must be admin or staff")
			return
		}

		perms := []string{}
		seen := map[string]bool{}
		for _, p := range input.Permissions {
			if !access.IsKnown(p) {
				apierr.BadRequest(c, "Unknown permission: "+p)
				return
			}
			if !seen[p] {
				seen[p] = true
				perms = append(perms, p)
			}
		}
		if role == users.RoleAdmin {
			perms = access.AllNames()
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		u := users.User{Username: username, Password: string(hash), Role: role, Permissions: perms}
		if err := repo.Create(c.Request.Context(), &u); err != nil {
			apierr.Write(c, logger, err, "Failed to create user")
			return
		}
		logger.Info("User created", zap.Uint("user_id", u.ID), zap.String("role", u.Role))
		c.JSON(http.StatusCreated, auth.NewUserResponse(u))
	}
}

// DELETE /users/:id
func DeleteUser(repo repository.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			apierr.BadRequest(c, "Invalid id")
			return
		}
		if err := repo.Delete(c.Request.Context(), uint(id)); err != nil {
			apierr.Write(c, logger, err, "Failed to delete user")
			return
		}
		logger.Info("User deleted", zap.Uint64("user_id", id))
		c.Status(http.StatusNoContent)
	}
}
