package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/repository"
)

type ProductRepository struct {
	mu     sync.RWMutex
	nextID uint
	byID   map[uint]catalog.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{nextID: 1, byID: make(map[uint]catalog.Product)}
}

func cloneProduct(p catalog.Product) catalog.Product {
	p.Images = append([]string(nil), p.Images...)
	p.Sizes = append([]string(nil), p.Sizes...)
	p.Colors = append([]string(nil), p.Colors...)
	if p.DiscountPrice != nil {
		d := *p.DiscountPrice
		p.DiscountPrice = &d
	}
	if p.CategoryID != nil {
		c := *p.CategoryID
		p.CategoryID = &c
	}
	return p
}

func (r *ProductRepository) List(ctx context.Context, f repository.ProductFilter) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Product, 0, len(r.byID))
	for _, p := range r.byID {
		if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
			continue
		}
		if f.Featured && !p.IsFeatured {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	// newest first, like the database listing
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, &repository.ErrNotFound{Resource: "product", ID: strconv.FormatUint(uint64(id), 10)}
	}
	cp := cloneProduct(p)
	return &cp, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt, p.UpdatedAt = now, now
	r.byID[p.ID] = cloneProduct(*p)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[p.ID]
	if !ok {
		return &repository.ErrNotFound{Resource: "product", ID: strconv.FormatUint(uint64(p.ID), 10)}
	}
	// the like counter is only changed through AdjustLikes
	p.Likes = cur.Likes
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.byID[p.ID] = cloneProduct(*p)
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return &repository.ErrNotFound{Resource: "product", ID: strconv.FormatUint(uint64(id), 10)}
	}
	delete(r.byID, id)
	return nil
}

func (r *ProductRepository) AdjustLikes(ctx context.Context, id uint, delta int) (*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, &repository.ErrNotFound{Resource: "product", ID: strconv.FormatUint(uint64(id), 10)}
	}
	p.Likes += delta
	if p.Likes < 0 {
		p.Likes = 0
	}
	r.byID[id] = p
	cp := cloneProduct(p)
	return &cp, nil
}

type CategoryRepository struct {
	mu     sync.RWMutex
	nextID uint
	byID   map[uint]catalog.Category
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{nextID: 1, byID: make(map[uint]catalog.Category)}
}

func (r *CategoryRepository) List(ctx context.Context) ([]catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, &repository.ErrNotFound{Resource: "category", ID: strconv.FormatUint(uint64(id), 10)}
	}
	return &c, nil
}

func (r *CategoryRepository) nameTaken(name string, except uint) bool {
	for id, c := range r.byID {
		if id != except && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func (r *CategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(c.Name, 0) {
		return &repository.ErrConflict{Resource: "category", Message: "name already exists"}
	}
	now := time.Now().UTC()
	c.ID = r.nextID
	r.nextID++
	c.CreatedAt, c.UpdatedAt = now, now
	r.byID[c.ID] = *c
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[c.ID]
	if !ok {
		return &repository.ErrNotFound{Resource: "category", ID: strconv.FormatUint(uint64(c.ID), 10)}
	}
	if r.nameTaken(c.Name, c.ID) {
		return &repository.ErrConflict{Resource: "category", Message: "name already exists"}
	}
	c.CreatedAt = cur.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	r.byID[c.ID] = *c
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return &repository.ErrNotFound{Resource: "category", ID: strconv.FormatUint(uint64(id), 10)}
	}
	delete(r.byID, id)
	return nil
}
