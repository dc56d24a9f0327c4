package catalogapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-app/internal/api/apierr"
	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/repository"
)

// GET /products?categoryId=&featured=
func ListProducts(repo repository.ProductRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f repository.ProductFilter
		if raw := c.Query("categoryId"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apierr.BadRequest(c, "Invalid categoryId")
				return
			}
			cid := uint(id)
			f.CategoryID = &cid
		}
		f.Featured = c.Query("featured") == "true"

		products, err := repo.List(c.Request.Context(), f)
		if err != nil {
			apierr.Write(c, logger, err, "Failed to load products")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProduct(repo repository.ProductRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			apierr.Write(c, logger, err, "Failed to load product")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// POST /products
func CreateProduct(repo repository.ProductRepository, categories repository.CategoryRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productInput
		if err := c.ShouldBindJSON(&in); err != nil {
			apierr.BadRequest(c, err.Error())
			return
		}
		if msg := in.validate(); msg != "" {
			apierr.BadRequest(c, msg)
			return
		}
		if !categoryExists(c, categories, in.CategoryID, logger) {
			return
		}

		var p catalog.Product
		in.apply(&p)
		if err := repo.Create(c.Request.Context(), &p); err != nil {
			apierr.Write(c, logger, err, "Failed to create product")
			return
		}
		logger.Info("Product created", zap.Uint("product_id", p.ID))
		c.JSON(http.StatusCreated, p)
	}
}

// PUT /products/:id
func UpdateProduct(repo repository.ProductRepository, categories repository.CategoryRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var in productInput
		if err := c.ShouldBindJSON(&in); err != nil {
			apierr.BadRequest(c, err.Error())
			return
		}
		if msg := in.validate(); msg != "" {
			apierr.BadRequest(c, msg)
			return
		}
		if !categoryExists(c, categories, in.CategoryID, logger) {
			return
		}

		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			apierr.Write(c, logger, err, "Failed to load product")
			return
		}
		in.apply(p)
		if err := repo.Update(c.Request.Context(), p); err != nil {
			apierr.Write(c, logger, err, "Failed to update product")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// DELETE /products/:id
func DeleteProduct(repo repository.ProductRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := repo.Delete(c.Request.Context(), id); err != nil {
			apierr.Write(c, logger, err, "Failed to delete product")
			return
		}
		logger.Info("Product deleted", zap.Uint("product_id", id))
		c.Status(http.StatusNoContent)
	}
}

// POST /products/:id/like
func LikeProduct(repo repository.ProductRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var in struct {
			Liked *bool `json:"liked" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			apierr.BadRequest(c, "liked is required")
			return
		}
		delta := -1
		if *in.Liked {
			delta = 1
		}
		p, err := repo.AdjustLikes(c.Request.Context(), id, delta)
		if err != nil {
			apierr.Write(c, logger, err, "Failed to update likes")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func categoryExists(c *gin.Context, categories repository.CategoryRepository, id *uint, logger *zap.Logger) bool {
	if id == nil {
		return true
	}
	if _, err := categories.GetByID(c.Request.Context(), *id); err != nil {
		if repository.IsNotFound(err) {
			apierr.BadRequest(c, "Unknown category")
			return false
		}
		apierr.Write(c, logger, err, "Failed to load category")
		return false
	}
	return true
}
