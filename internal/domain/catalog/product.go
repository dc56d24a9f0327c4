package catalog

import (
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	DiscountPrice *float64       `json:"discountPrice,omitempty"`
	CategoryID    *uint          `gorm:"index" json:"categoryId,omitempty"`
	Images        pq.StringArray `gorm:"type:text[]" json:"images"`
	Sizes         pq.StringArray `gorm:"type:text[]" json:"sizes"`
	Colors        pq.StringArray `gorm:"type:text[]" json:"colors"`
	Stock         int            `gorm:"not null;default:0" json:"stock"`
	IsFeatured    bool           `gorm:"not null;default:false;index" json:"isFeatured"`
	Likes         int            `gorm:"not null;default:0" json:"likes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EffectivePrice is the discount price when one is set, else the list price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null;uniqueIndex" json:"name"`
	ImageURL string `json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
