package postgres

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront-app/internal/domain/access"
	"storefront-app/internal/domain/users"
	"storefront-app/internal/repository"
)

type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewUserRepository(db *gorm.DB, logger *zap.Logger) *userRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) List(ctx context.Context) ([]users.User, error) {
	var out []users.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		r.logger.Error("Failed to list users", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*users.User, error) {
	var u users.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if isNotFound(err) {
			return nil, &repository.ErrNotFound{Resource: "user", ID: strconv.FormatUint(uint64(id), 10)}
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	var u users.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if isNotFound(err) {
			return nil, &repository.ErrNotFound{Resource: "user", ID: username}
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, u *users.User) error {
	u.ID = 0
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicate(err) {
			return &repository.ErrConflict{Resource: "user", Message: "username already exists"}
		}
		r.logger.Error("Failed to create user", zap.Error(err))
		return err
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u users.User
		if err := tx.First(&u, id).Error; err != nil {
			if isNotFound(err) {
				return &repository.ErrNotFound{Resource: "user", ID: strconv.FormatUint(uint64(id), 10)}
			}
			return err
		}
		if u.IsDefault {
			return repository.ErrProtected
		}
		return tx.Delete(&u).Error
	})
}

func (r *userRepository) EnsureDefaultAdmin(ctx context.Context, username, passwordHash string) (*users.User, error) {
	var admin users.User
	err := r.db.WithContext(ctx).Where("is_default = true").First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	admin = users.User{
		Username:    username,
		Password:    passwordHash,
		Role:        users.RoleAdmin,
		Permissions: access.AllNames(),
		IsDefault:   true,
	}
	if err := r.Create(ctx, &admin); err != nil {
		return nil, err
	}
	r.logger.Info("Created default admin", zap.String("username", username))
	return &admin, nil
}
