package postgres

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-app/internal/domain/orders"
	"storefront-app/internal/repository"
)

type orderRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewOrderRepository(db *gorm.DB, logger *zap.Logger) *orderRepository {
	return &orderRepository{db: db, logger: logger}
}

func (r *orderRepository) List(ctx context.Context) ([]orders.Order, error) {
	var out []orders.Order
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		r.logger.Error("Failed to list orders", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*orders.Order, error) {
	var o orders.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, &repository.ErrNotFound{Resource: "order", ID: id.String()}
		}
		r.logger.Error("Failed to get order", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, o *orders.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		if isDuplicate(err) {
			return &repository.ErrConflict{Resource: "order", Message: "id already exists"}
		}
		r.logger.Error("Failed to create order", zap.Error(err))
		return err
	}
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status orders.Status) (*orders.Order, error) {
	var o orders.Order
	res := r.db.WithContext(ctx).Model(&o).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		r.logger.Error("Failed to update order status", zap.String("id", id.String()), zap.Error(res.Error))
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &repository.ErrNotFound{Resource: "order", ID: id.String()}
	}
	return &o, nil
}
