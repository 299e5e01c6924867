package pricing

import (
	"marquee/internal/models"
)

// TicketPrice computes the fare for a single ticket: half fare pays
// 50% of the session base price, full fare pays it whole. Values keep
// full floating precision; rounding happens only at presentation.
func TicketPrice(basePrice float64, fareType string) float64 {
	if fareType == models.FareHalf {
		return basePrice / 2
	}
	return basePrice
}

// OrderTotal is the fare plus the snack cart subtotal
func OrderTotal(ticketPrice float64, cart *Cart) float64 {
	return ticketPrice + cart.Subtotal()
}
