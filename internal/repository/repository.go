package repository

import (
	"errors"

	"github.com/lib/pq"

	"marquee/internal/database"
	apperrors "marquee/internal/errors"
)

type Repositories struct {
	Movies   *MovieRepository
	Rooms    *RoomRepository
	Sessions *SessionRepository
	Tickets  *TicketRepository
	Snacks   *SnackRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Movies:   NewMovieRepository(db),
		Rooms:    NewRoomRepository(db),
		Sessions: NewSessionRepository(db),
		Tickets:  NewTicketRepository(db),
		Snacks:   NewSnackRepository(db),
	}
}

// restrictConflict translates a foreign key RESTRICT violation into a
// domain conflict so handlers can answer 409 instead of 500
func restrictConflict(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return apperrors.E(apperrors.KindConflict, message)
	}
	return err
}
