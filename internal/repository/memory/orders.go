package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-app/internal/domain/orders"
	"storefront-app/internal/repository"
)

type OrderRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]orders.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{byID: make(map[uuid.UUID]orders.Order)}
}

func cloneOrder(o orders.Order) orders.Order {
	o.Items = append(orders.LineItems(nil), o.Items...)
	return o
}

func (r *OrderRepository) List(ctx context.Context) ([]orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]orders.Order, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byID[id]
	if !ok {
		return nil, &repository.ErrNotFound{Resource: "order", ID: id.String()}
	}
	cp := cloneOrder(o)
	return &cp, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *orders.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if _, exists := r.byID[o.ID]; exists {
		return &repository.ErrConflict{Resource: "order", Message: "id already exists"}
	}
	now := time.Now().UTC()
	o.CreatedAt, o.UpdatedAt = now, now
	r.byID[o.ID] = cloneOrder(*o)
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status orders.Status) (*orders.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[id]
	if !ok {
		return nil, &repository.ErrNotFound{Resource: "order", ID: id.String()}
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	r.byID[id] = o
	cp := cloneOrder(o)
	return &cp, nil
}
