package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "marquee/internal/errors"
	"marquee/internal/models"
)

func ticketsAt(seats ...string) []models.Ticket {
	tickets := make([]models.Ticket, len(seats))
	for i, seat := range seats {
		tickets[i] = models.Ticket{ID: seat + "-id", SessionID: "s1", SeatLabel: seat}
	}
	return tickets
}

func TestValidateSaleInvalidSeat(t *testing.T) {
	err := ValidateSale(10, nil, "Z9", "")
	assert.Equal(t, apperrors.KindInvalidSeat, apperrors.KindOf(err))

	// seat outside the partially filled universe
	err = ValidateSale(5, nil, "A2", "")
	assert.Equal(t, apperrors.KindInvalidSeat, apperrors.KindOf(err))
}

func TestValidateSaleCaseInsensitiveSeat(t *testing.T) {
	assert.NoError(t, ValidateSale(10, nil, "a1", ""))

	// "a1" collides with an existing "A1"
	err := ValidateSale(10, ticketsAt("A1"), "a1", "")
	assert.Equal(t, apperrors.KindSeatTaken, apperrors.KindOf(err))
}

func TestValidateSaleCapacityExceeded(t *testing.T) {
	// room of 5 with 5 sold seats rejects any seat, even a free-looking one
	sold := ticketsAt("A1", "B1", "C1", "D1", "E1")
	err := ValidateSale(5, sold, "A1", "")
	assert.Equal(t, apperrors.KindCapacityExceeded, apperrors.KindOf(err))
}

func TestValidateSaleSeatTaken(t *testing.T) {
	sold := ticketsAt("A1")
	err := ValidateSale(10, sold, "A1", "")
	assert.Equal(t, apperrors.KindSeatTaken, apperrors.KindOf(err))

	// any other valid seat succeeds
	assert.NoError(t, ValidateSale(10, sold, "B1", ""))
}

func TestValidateSaleEditKeepsOwnSeat(t *testing.T) {
	sold := ticketsAt("A1", "B1")

	// resubmitting the same seat while editing must not be rejected against itself
	assert.NoError(t, ValidateSale(10, sold, "A1", "A1-id"))

	// moving to another free seat also works
	assert.NoError(t, ValidateSale(10, sold, "C1", "A1-id"))

	// but another customer's seat is still taken
	err := ValidateSale(10, sold, "B1", "A1-id")
	assert.Equal(t, apperrors.KindSeatTaken, apperrors.KindOf(err))
}

func TestValidateSaleEditAtFullCapacity(t *testing.T) {
	// full room: editing an existing ticket stays allowed because its own
	// seat is excluded from the capacity count
	sold := ticketsAt("A1", "B1", "C1", "D1", "E1")
	assert.NoError(t, ValidateSale(5, sold, "A1", "A1-id"))
}

func TestValidateSaleZeroCapacity(t *testing.T) {
	// capacity 0 means no seats available, not an error in the generator
	err := ValidateSale(0, nil, "A1", "")
	assert.Equal(t, apperrors.KindInvalidSeat, apperrors.KindOf(err))
}

func TestAvailable(t *testing.T) {
	// capacity 6 -> one seat per row, universe A1..F1
	sold := ticketsAt("A1", "C1")
	free := Available(6, sold, "")
	assert.Equal(t, []string{"B1", "D1", "E1", "F1"}, free)

	// excluding an edited ticket frees its seat
	free = Available(6, sold, "A1-id")
	assert.Equal(t, []string{"A1", "B1", "D1", "E1", "F1"}, free)
}

func TestOccupiedNormalizesLabels(t *testing.T) {
	occupied := Occupied([]models.Ticket{{ID: "t1", SeatLabel: "a2"}}, "")
	assert.True(t, occupied["A2"])
}
