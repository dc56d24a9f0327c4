// Package memory keeps every repository in process. It backs the server when no
// database is configured and is the fixture for handler tests.
package memory

import (
	"storefront-app/internal/repository"
)

// NewRepositories returns empty in-memory repositories.
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		Site:     NewSiteConfigRepository(),
		Product:  NewProductRepository(),
		Category: NewCategoryRepository(),
		Order:    NewOrderRepository(),
		User:     NewUserRepository(),
	}
}
