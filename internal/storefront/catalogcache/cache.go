// Package catalogcache keeps the product list the storefront last loaded.
package catalogcache

import (
	"context"
	"fmt"
	"sync"

	"storefront-app/internal/domain/catalog"
)

type Remote interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
}

type Cache struct {
	mu       sync.RWMutex
	products []catalog.Product
}

func New() *Cache {
	return &Cache{}
}

// Load replaces the cache with the remote listing. On error the cache keeps
// its previous contents.
func (c *Cache) Load(ctx context.Context, remote Remote) error {
	products, err := remote.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	c.Set(products)
	return nil
}

func (c *Cache) Set(products []catalog.Product) {
	c.mu.Lock()
	c.products = append([]catalog.Product(nil), products...)
	c.mu.Unlock()
}

func (c *Cache) Get(id uint) (catalog.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// Replace swaps in p for the cached product with the same id. Unknown products
// are appended.
func (c *Cache) Replace(p catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return
		}
	}
	c.products = append(c.products, p)
}

func (c *Cache) List() []catalog.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]catalog.Product(nil), c.products...)
}

// Featured lists cached products flagged as featured, at most limit of them
// when limit is positive.
func (c *Cache) Featured(limit int) []catalog.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []catalog.Product
	for _, p := range c.products {
		if !p.IsFeatured {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
