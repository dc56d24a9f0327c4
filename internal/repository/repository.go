package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/domain/orders"
	"storefront-app/internal/domain/site"
	"storefront-app/internal/domain/users"
)

// SiteConfigRepository stores the singleton configuration document. Every
// method returns the normalized, persisted document.
type SiteConfigRepository interface {
	// Get creates the default document on first read.
	Get(ctx context.Context) (*site.SiteConfig, error)
	Replace(ctx context.Context, cfg *site.SiteConfig) (*site.SiteConfig, error)
	Merge(ctx context.Context, u site.Update) (*site.SiteConfig, error)
}

type ProductFilter struct {
	CategoryID *uint
	Featured   bool
}

type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) ([]catalog.Product, error)
	GetByID(ctx context.Context, id uint) (*catalog.Product, error)
	Create(ctx context.Context, p *catalog.Product) error
	Update(ctx context.Context, p *catalog.Product) error
	Delete(ctx context.Context, id uint) error
	// AdjustLikes adds delta to the like counter, never going below zero.
	AdjustLikes(ctx context.Context, id uint, delta int) (*catalog.Product, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]catalog.Category, error)
	GetByID(ctx context.Context, id uint) (*catalog.Category, error)
	Create(ctx context.Context, c *catalog.Category) error
	Update(ctx context.Context, c *catalog.Category) error
	Delete(ctx context.Context, id uint) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]orders.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*orders.Order, error)
	Create(ctx context.Context, o *orders.Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status orders.Status) (*orders.Order, error)
}

type UserRepository interface {
	List(ctx context.Context) ([]users.User, error)
	GetByID(ctx context.Context, id uint) (*users.User, error)
	GetByUsername(ctx context.Context, username string) (*users.User, error)
	Create(ctx context.Context, u *users.User) error
	// Delete refuses the default admin with ErrProtected.
	Delete(ctx context.Context, id uint) error
	// EnsureDefaultAdmin creates the bootstrap admin unless one exists.
	EnsureDefaultAdmin(ctx context.Context, username, passwordHash string) (*users.User, error)
}

type Repositories struct {
	Site     SiteConfigRepository
	Product  ProductRepository
	Category CategoryRepository
	Order    OrderRepository
	User     UserRepository
}
