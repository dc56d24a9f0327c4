package catalogapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-app/internal/api/apierr"
	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/repository"
)

// GET /categories
func ListCategories(repo repository.CategoryRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			apierr.Write(c, logger, err, "Failed to load categories")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// POST /categories
func CreateCategory(repo repository.CategoryRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categoryInput
		if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Name) == "" {
			apierr.BadRequest(c, "Name is required")
			return
		}
		cat := catalog.Category{Name: strings.TrimSpace(in.Name), ImageURL: in.ImageURL}
		if err := repo.Create(c.Request.Context(), &cat); err != nil {
			apierr.Write(c, logger, err, "Failed to create category")
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

// PUT /categories/:id
func UpdateCategory(repo repository.CategoryRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var in categoryInput
		if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Name) == "" {
			apierr.BadRequest(c, "Name is required")
			return
		}
		cat, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			apierr.Write(c, logger, err, "Failed to load category")
			return
		}
		cat.Name = strings.TrimSpace(in.Name)
		cat.ImageURL = in.ImageURL
		if err := repo.Update(c.Request.Context(), cat); err != nil {
			apierr.Write(c, logger, err, "Failed to update category")
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

// DELETE /categories/:id
func DeleteCategory(repo repository.CategoryRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := repo.Delete(c.Request.Context(), id); err != nil {
			apierr.Write(c, logger, err, "Failed to delete category")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
