// Package cart owns per-session cart state and the money math on top of it.
// Carts are mutated only through the tool execution layer.
package cart

import (
	"math"

	menux "github.com/ordervoice/kiosk-agent/agent/menu"
)

// DefaultTaxRate is the NYC combined sales tax rate, overridable by config.
const DefaultTaxRate = 0.08875

// Item is one cart row: a menu item reference and a positive quantity. A row
// whose quantity would drop to zero is removed, never retained.
type Item struct {
	MenuItem menux.Item
	Quantity int
}

// Cart is an ordered sequence of rows, unique by menu item id. Quantities
// accumulate instead of producing duplicate rows.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add accumulates quantity onto an existing row or appends a new one.
// Quantities below 1 count as 1 so the row invariant holds for any input.
func (c *Cart) Add(mi menux.Item, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].MenuItem.ID == mi.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, Item{MenuItem: mi, Quantity: quantity})
}

// Remove drops the entire row for id, returning it. The second return is
// false when the id is not in the cart, in which case the cart is unchanged.
func (c *Cart) Remove(id string) (Item, bool) {
	for i := range c.items {
		if c.items[i].MenuItem.ID == id {
			removed := c.items[i]
			c.items = append(c.items[:i], c.items[i+1:]...)
			return removed, true
		}
	}
	return Item{}, false
}

// Items returns a copy of the rows in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// UnitCount is the total number of units across all rows.
func (c *Cart) UnitCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the unrounded sum of line totals.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.MenuItem.Price * float64(it.Quantity)
	}
	return sum
}

// Totals computes subtotal, tax, and total at the given rate, each rounded
// half-up at the cent. Tax is rounded before it is added, so
// total == Round2(subtotal + Round2(subtotal*rate)) always holds.
func (c *Cart) Totals(taxRate float64) (subtotal, tax, total float64) {
	subtotal = Round2(c.Subtotal())
	tax = Round2(subtotal * taxRate)
	total = Round2(subtotal + tax)
	return subtotal, tax, total
}

// Round2 rounds to two decimal places, half away from zero. For the
// non-negative amounts in this domain that is round-half-up at the cent.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
