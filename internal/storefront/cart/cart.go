// Package cart is the local shopping cart. Nothing in it reaches the store
// until checkout.
package cart

import (
	"errors"
	"sync"

	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/domain/orders"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Key identifies a cart line. Two lines are the same only when product, size
// and color all match.
type Key struct {
	ProductID uint
	Size      string
	Color     string
}

type Item struct {
	Product       catalog.Product `json:"product"`
	SelectedSize  string          `json:"selectedSize"`
	SelectedColor string          `json:"selectedColor"`
	Quantity      int             `json:"quantity"`
}

func (i Item) Key() Key {
	return Key{ProductID: i.Product.ID, Size: i.SelectedSize, Color: i.SelectedColor}
}

// LineTotal is the effective unit price times quantity.
func (i Item) LineTotal() float64 {
	return i.Product.EffectivePrice() * float64(i.Quantity)
}

type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add merges item into the line with the same key, or appends a new line.
func (c *Cart) Add(item Item) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.find(item.Key()); i >= 0 {
		c.items[i].Quantity += item.Quantity
		return nil
	}
	c.items = append(c.items, item)
	return nil
}

// Remove deletes the matching line and reports whether one existed.
func (c *Cart) Remove(productID uint, size, color string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.find(Key{productID, size, color})
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// UpdateQuantity adds delta to the matching line, never going below 1.
func (c *Cart) UpdateQuantity(productID uint, size, color string, delta int) (Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.find(Key{productID, size, color})
	if i < 0 {
		return Item{}, false
	}
	q := c.items[i].Quantity + delta
	if q < 1 {
		q = 1
	}
	c.items[i].Quantity = q
	return c.items[i], true
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return total(c.items)
}

func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Item(nil), c.items...)
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Snapshot freezes the cart into order lines and their total.
func (c *Cart) Snapshot() (orders.LineItems, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make(orders.LineItems, 0, len(c.items))
	for _, it := range c.items {
		image := ""
		if len(it.Product.Images) > 0 {
			image = it.Product.Images[0]
		}
		lines = append(lines, orders.LineItem{
			ProductID:     it.Product.ID,
			Name:          it.Product.Name,
			Image:         image,
			UnitPrice:     it.Product.EffectivePrice(),
			SelectedSize:  it.SelectedSize,
			SelectedColor: it.SelectedColor,
			Quantity:      it.Quantity,
		})
	}
	return lines, total(c.items)
}

func (c *Cart) find(k Key) int {
	for i, it := range c.items {
		if it.Key() == k {
			return i
		}
	}
	return -1
}

func total(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.LineTotal()
	}
	return sum
}
