package postgres

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront-app/internal/repository"
)

// NewRepositories wires every repository onto one gorm connection.
func NewRepositories(db *gorm.DB, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Site:     NewSiteConfigRepository(db, logger),
		Product:  NewProductRepository(db, logger),
		Category: NewCategoryRepository(db, logger),
		Order:    NewOrderRepository(db, logger),
		User:     NewUserRepository(db, logger),
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
