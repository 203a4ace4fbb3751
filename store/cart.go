// Package store holds the per-session cart and checkout state containers.
//
// Stores are plain values owned by one session. They do no locking and never
// fail on absent items; callers serialize access (see session.Manager) and
// validate input at the boundary, either explicitly or through Apply.
package store

import (
	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/shopspring/decimal"
)

// Cart is the authoritative set of line items for one shopping session.
type Cart struct {
	items  []models.LineItem
	isOpen bool
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges item into an existing line with the same identity triple,
// or appends it. Merged quantities are clamped to models.MaxQuantity.
func (c *Cart) AddItem(item models.LineItem) {
	if i := c.indexOf(item.Key()); i >= 0 {
		c.items[i].Quantity = clampQuantity(c.items[i].Quantity + item.Quantity)
		return
	}
	item.Quantity = clampQuantity(item.Quantity)
	c.items = append(c.items, item)
}

func (c *Cart) RemoveItem(key models.ItemKey) {
	i := c.indexOf(key)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// UpdateQuantity sets the quantity of an existing line. A quantity <= 0
// removes the line.
func (c *Cart) UpdateQuantity(key models.ItemKey, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(key)
		return
	}
	if i := c.indexOf(key); i >= 0 {
		c.items[i].Quantity = clampQuantity(quantity)
	}
}

func (c *Cart) ClearCart() {
	c.items = nil
}

// TotalItems is the sum of quantities, not the number of distinct lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c *Cart) ItemCount(key models.ItemKey) int {
	if i := c.indexOf(key); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

func (c *Cart) HasItem(key models.ItemKey) bool {
	return c.indexOf(key) >= 0
}

func (c *Cart) SetIsOpen(open bool) {
	c.isOpen = open
}

func (c *Cart) IsOpen() bool {
	return c.isOpen
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []models.LineItem {
	out := make([]models.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Snapshot returns the persisted shape of the cart. The open flag is UI state
// and is not persisted.
func (c *Cart) Snapshot() models.CartSnapshot {
	return models.CartSnapshot{Items: c.Items()}
}

// Restore replaces the cart contents with a snapshot, re-merging duplicate
// triples so a hand-edited snapshot cannot break identity.
func (c *Cart) Restore(snap models.CartSnapshot) {
	c.items = nil
	for _, item := range snap.Items {
		if item.Quantity <= 0 {
			continue
		}
		c.AddItem(item)
	}
}

func (c *Cart) indexOf(key models.ItemKey) int {
	for i, item := range c.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

func clampQuantity(q int) int {
	if q > models.MaxQuantity {
		return models.MaxQuantity
	}
	return q
}
