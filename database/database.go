package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/domain/orders"
	"storefront-app/internal/domain/site"
	"storefront-app/internal/domain/users"
)

// InitDB connects to Postgres and migrates every model.
func InitDB(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&site.Record{},
		&catalog.Category{},
		&catalog.Product{},
		&orders.Order{},
		&users.User{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	logger.Info("Connected and migrated successfully")
	return db, nil
}
