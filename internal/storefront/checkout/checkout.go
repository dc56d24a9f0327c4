// Package checkout turns the cart into an order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"storefront-app/internal/domain/orders"
	"storefront-app/internal/storefront/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

type Remote interface {
	PlaceOrder(ctx context.Context, o *orders.Order) (*orders.Order, error)
}

type Service struct {
	cart   *cart.Cart
	remote Remote
	now    func() time.Time
	logger *zap.Logger
}

// New returns a checkout over c. A nil now uses time.Now.
func New(c *cart.Cart, remote Remote, now func() time.Time, logger *zap.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cart: c, remote: remote, now: now, logger: logger}
}

// PlaceOrder submits the current cart as a Pending order dated today. The
// cart is cleared only once the store has accepted the order; on any error it
// is left as it was.
func (s *Service) PlaceOrder(ctx context.Context, customer orders.Customer) (*orders.Order, error) {
	if s.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	items, total := s.cart.Snapshot()
	o := &orders.Order{
		Customer: customer,
		Items:    items,
		Total:    total,
		Status:   orders.StatusPending,
		Date:     s.now().Format(orders.DateLayout),
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	placed, err := s.remote.PlaceOrder(ctx, o)
	if err != nil {
		s.logger.Error("Order submission failed", zap.Int("items", len(items)), zap.Error(err))
		return nil, fmt.Errorf("place order: %w", err)
	}
	s.cart.Clear()
	s.logger.Info("Order placed", zap.String("order_id", placed.ID.String()), zap.Float64("total", placed.Total))
	return placed, nil
}
