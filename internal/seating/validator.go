package seating

import (
	apperrors "marquee/internal/errors"
	"marquee/internal/models"
)

// Occupied returns the set of seat labels held by the given tickets,
// excluding the ticket being edited (excludeTicketID may be empty).
// Callers pass the ticket list of a single session.
func Occupied(tickets []models.Ticket, excludeTicketID string) map[string]bool {
	occupied := make(map[string]bool, len(tickets))
	for _, t := range tickets {
		if excludeTicketID != "" && t.ID == excludeTicketID {
			continue
		}
		occupied[Normalize(t.SeatLabel)] = true
	}
	return occupied
}

// Available returns the seat universe for capacity minus the seats
// occupied by tickets, in generation order
func Available(capacity int, tickets []models.Ticket, excludeTicketID string) []string {
	occupied := Occupied(tickets, excludeTicketID)
	var free []string
	for _, seat := range Generate(capacity) {
		if !occupied[seat] {
			free = append(free, seat)
		}
	}
	return free
}

// ActiveCount counts tickets excluding the one being edited
func ActiveCount(tickets []models.Ticket, excludeTicketID string) int {
	count := 0
	for _, t := range tickets {
		if excludeTicketID != "" && t.ID == excludeTicketID {
			continue
		}
		count++
	}
	return count
}

// ValidateSale checks a prospective sale (or edit) against the room
// capacity and the session's sold tickets. It is a pure function: no
// write happens here, and every check runs before the caller issues
// one. For edits, excludeTicketID removes the ticket's own seat from
// both the capacity count and the seat-taken check, so a customer can
// keep their current seat or move to a free one.
//
// Check order: seat validity, then capacity, then occupancy.
func ValidateSale(capacity int, tickets []models.Ticket, seatLabel, excludeTicketID string) error {
	seat := Normalize(seatLabel)

	if !InUniverse(capacity, seat) {
		return apperrors.Ef(apperrors.KindInvalidSeat, "seat %q is not a valid seat for this room", seat)
	}

	if ActiveCount(tickets, excludeTicketID) >= capacity {
		return apperrors.E(apperrors.KindCapacityExceeded, "session capacity exhausted")
	}

	if Occupied(tickets, excludeTicketID)[seat] {
		return apperrors.Ef(apperrors.KindSeatTaken, "seat %q is already sold for this session", seat)
	}

	return nil
}
