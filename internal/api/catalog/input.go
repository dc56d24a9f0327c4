package catalogapi

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-app/internal/domain/catalog"
)

type productInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"gte=0"`
	DiscountPrice *float64 `json:"discountPrice"`
	CategoryID    *uint    `json:"categoryId"`
	Images        []string `json:"images"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Stock         int      `json:"stock" binding:"gte=0"`
	IsFeatured    bool     `json:"isFeatured"`
}

func (in productInput) validate() string {
	if strings.TrimSpace(in.Name) == "" {
		return "Name is required"
	}
	if in.DiscountPrice != nil && (*in.DiscountPrice < 0 || *in.DiscountPrice > in.Price) {
		return "Discount price must be between 0 and the price"
	}
	return ""
}

func (in productInput) apply(p *catalog.Product) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = in.Price
	p.DiscountPrice = in.DiscountPrice
	p.CategoryID = in.CategoryID
	p.Images = nonNil(in.Images)
	p.Sizes = nonNil(in.Sizes)
	p.Colors = nonNil(in.Colors)
	p.Stock = in.Stock
	p.IsFeatured = in.IsFeatured
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type categoryInput struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// parseID reads the :id path parameter. It responds 400 and returns false on
// anything that is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(400, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
