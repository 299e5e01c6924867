package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marquee/internal/models"
)

var (
	popcorn = models.Snack{ID: "s1", Name: "Pipoca", UnitPrice: 5.00}
	soda    = models.Snack{ID: "s2", Name: "Refrigerante", UnitPrice: 3.50}
)

func TestAddMergesDuplicateLines(t *testing.T) {
	cart := NewCart()
	cart.Add(popcorn)
	cart.Add(popcorn)

	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Items()[0].Quantity)
}

func TestAddNIgnoresNonPositive(t *testing.T) {
	cart := NewCart()
	cart.AddN(popcorn, 0)
	cart.AddN(popcorn, -2)
	assert.Equal(t, 0, cart.Len())
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.Add(popcorn)
	cart.SetQuantity(popcorn.ID, 0)
	assert.Equal(t, 0, cart.Len())

	cart.Add(popcorn)
	cart.SetQuantity(popcorn.ID, -1)
	assert.Equal(t, 0, cart.Len())
}

func TestSetQuantityReplaces(t *testing.T) {
	cart := NewCart()
	cart.Add(soda)
	cart.SetQuantity(soda.ID, 4)
	assert.Equal(t, 4, cart.Items()[0].Quantity)
	assert.Equal(t, 14.00, cart.Subtotal())
}

func TestRemoveIsIdempotent(t *testing.T) {
	cart := NewCart()
	cart.Add(popcorn)
	cart.Remove(popcorn.ID)
	cart.Remove(popcorn.ID)
	cart.Remove("missing")
	assert.Equal(t, 0, cart.Len())
}

func TestSubtotal(t *testing.T) {
	cart := NewCart()
	cart.AddN(popcorn, 2)
	cart.AddN(soda, 1)
	assert.Equal(t, 13.50, cart.Subtotal())
}
