package pricing

import (
	"marquee/internal/models"
)

// CartItem is one snack line of an in-progress sale
type CartItem struct {
	Snack    models.Snack
	Quantity int
}

// Cart holds the transient snack selections attached to a single sale,
// merged into the ticket's snack list on confirm
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of the snack in the cart. Adding a snack already
// present increments its quantity instead of duplicating the line.
func (c *Cart) Add(snack models.Snack) {
	c.AddN(snack, 1)
}

// AddN adds n units of the snack, merging with an existing line.
// Non-positive n is a no-op.
func (c *Cart) AddN(snack models.Snack, n int) {
	if n <= 0 {
		return
	}
	for i := range c.items {
		if c.items[i].Snack.ID == snack.ID {
			c.items[i].Quantity += n
			return
		}
	}
	c.items = append(c.items, CartItem{Snack: snack, Quantity: n})
}

// SetQuantity replaces a line's quantity; zero or below removes the
// line entirely. Setting an absent id with a positive quantity is a
// no-op: the snack must be added first.
func (c *Cart) SetQuantity(snackID string, quantity int) {
	if quantity <= 0 {
		c.Remove(snackID)
		return
	}
	for i := range c.items {
		if c.items[i].Snack.ID == snackID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove drops a line by snack id; removing an absent id is a no-op
func (c *Cart) Remove(snackID string) {
	for i := range c.items {
		if c.items[i].Snack.ID == snackID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns the cart lines in insertion order
func (c *Cart) Items() []CartItem {
	return c.items
}

// Len returns the number of cart lines
func (c *Cart) Len() int {
	return len(c.items)
}

// Subtotal sums unit price times quantity over all lines
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Snack.UnitPrice * float64(item.Quantity)
	}
	return total
}
