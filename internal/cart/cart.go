// Package cart holds a customer's pre-checkout selection. A cart belongs
// to exactly one session and lives only in memory until an order is placed.
package cart

import (
	"sync"

	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/pricing"
)

// Cart is a mutable collection of product lines, unique by product id,
// in insertion order.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add inserts a new line with quantity 1, or increments the existing line
// for the same product. Stock is not touched: orders never consume stock.
func (c *Cart) Add(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.CartItem{Product: p, Quantity: 1})
}

// UpdateQuantity adjusts a line by delta, flooring at 1. Reaching the floor
// never removes the line; removal is only ever explicit. Unknown ids are a
// no-op.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == productID {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return
		}
	}
}

// Remove deletes a line regardless of quantity. Unknown ids are a no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Total sums the effective line prices of every item.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += pricing.LineTotal(item)
	}
	return total
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
