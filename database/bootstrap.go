package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront-app/internal/repository"
)

// Bootstrap makes sure the default admin and the site configuration exist.
// The password is only used when the admin has to be created.
func Bootstrap(ctx context.Context, repos *repository.Repositories, adminUsername, adminPassword string, logger *zap.Logger) error {
	all, err := repos.User.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	exists := false
	for _, u := range all {
		if u.IsDefault {
			exists = true
			break
		}
	}

	if !exists {
		if adminPassword == "" {
			return fmt.Errorf("ADMIN_PASSWORD is required to create the default admin")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		admin, err := repos.User.EnsureDefaultAdmin(ctx, adminUsername, string(hash))
		if err != nil {
			return fmt.Errorf("create default admin: %w", err)
		}
		logger.Info("Default admin created", zap.String("username", admin.Username))
	}

	if _, err := repos.Site.Get(ctx); err != nil {
		return fmt.Errorf("load site config: %w", err)
	}
	return nil
}
