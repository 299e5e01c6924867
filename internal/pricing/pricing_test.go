package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marquee/internal/models"
)

func TestTicketPrice(t *testing.T) {
	assert.Equal(t, 10.00, TicketPrice(20.00, models.FareHalf))
	assert.Equal(t, 20.00, TicketPrice(20.00, models.FareFull))
	assert.Equal(t, 0.0, TicketPrice(0, models.FareHalf))

	// odd base prices keep full precision
	assert.Equal(t, 12.75, TicketPrice(25.50, models.FareHalf))
}

func TestOrderTotal(t *testing.T) {
	cart := NewCart()
	cart.AddN(models.Snack{ID: "a", Name: "Pipoca Grande", UnitPrice: 5.00}, 2)
	cart.Add(models.Snack{ID: "b", Name: "Refrigerante", UnitPrice: 3.50})

	assert.Equal(t, 13.50, cart.Subtotal())
	assert.Equal(t, 33.50, OrderTotal(TicketPrice(20.00, models.FareFull), cart))
}

func TestOrderTotalEmptyCart(t *testing.T) {
	assert.Equal(t, 10.00, OrderTotal(10.00, NewCart()))
}
