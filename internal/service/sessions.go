package service

import (
	"context"
	"fmt"

	apperrors "marquee/internal/errors"
	"marquee/internal/models"
	"marquee/internal/repository"
	"marquee/internal/seating"
	"marquee/internal/validation"
)

type SessionService struct {
	sessionRepo *repository.SessionRepository
	movieRepo   *repository.MovieRepository
	roomRepo    *repository.RoomRepository
	ticketRepo  *repository.TicketRepository
}

func NewSessionService(sessionRepo *repository.SessionRepository, movieRepo *repository.MovieRepository, roomRepo *repository.RoomRepository, ticketRepo *repository.TicketRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		movieRepo:   movieRepo,
		roomRepo:    roomRepo,
		ticketRepo:  ticketRepo,
	}
}

func (s *SessionService) Create(ctx context.Context, req *models.CreateSessionRequest) (*models.Session, error) {
	if err := validation.ValidateSession(req, true).Err(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.MovieID, req.RoomID); err != nil {
		return nil, err
	}

	startsAt, err := validation.ParseDateTime(req.StartsAt)
	if err != nil {
		return nil, apperrors.E(apperrors.KindMissingField, "starts_at must be RFC 3339")
	}

	session := &models.Session{
		MovieID:   req.MovieID,
		RoomID:    req.RoomID,
		StartsAt:  startsAt,
		BasePrice: req.BasePrice,
		Language:  req.Language,
		Format:    req.Format,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func (s *SessionService) GetByID(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, apperrors.E(apperrors.KindNotFound, "session not found")
	}
	return session, nil
}

func (s *SessionService) List(ctx context.Context) ([]models.Session, error) {
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Update replaces the session fields. The not-in-the-past rule only
// applies on create, an existing session may keep a past date.
func (s *SessionService) Update(ctx context.Context, id string, req *models.CreateSessionRequest) (*models.Session, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateSession(req, false).Err(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.MovieID, req.RoomID); err != nil {
		return nil, err
	}

	startsAt, err := validation.ParseDateTime(req.StartsAt)
	if err != nil {
		return nil, apperrors.E(apperrors.KindMissingField, "starts_at must be RFC 3339")
	}

	existing.MovieID = req.MovieID
	existing.RoomID = req.RoomID
	existing.StartsAt = startsAt
	existing.BasePrice = req.BasePrice
	existing.Language = req.Language
	existing.Format = req.Format

	if err := s.sessionRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return existing, nil
}

// Delete refuses to remove a session with sold tickets. The foreign key
// constraint catches concurrent sales the pre-check misses.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	sold, err := s.ticketRepo.CountBySession(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count session tickets: %w", err)
	}
	if sold > 0 {
		return apperrors.E(apperrors.KindConflict, "session still has sold tickets")
	}

	deleted, err := s.sessionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.E(apperrors.KindNotFound, "session not found")
	}
	return nil
}

// SeatMap derives the seat universe from the room capacity and marks
// each seat with its occupancy among the session's sold tickets
func (s *SessionService) SeatMap(ctx context.Context, sessionID string) (*models.SeatMapResponse, error) {
	session, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, session.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, apperrors.E(apperrors.KindNotFound, "room not found")
	}

	tickets, err := s.ticketRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session tickets: %w", err)
	}

	occupied := seating.Occupied(tickets, "")
	labels := seating.Generate(room.Capacity)

	seats := make([]models.SeatStatus, len(labels))
	for i, label := range labels {
		seats[i] = models.SeatStatus{
			Label:    label,
			Row:      label[:1],
			Number:   i%seating.SeatsPerRow(room.Capacity) + 1,
			Occupied: occupied[label],
		}
	}

	sold := seating.ActiveCount(tickets, "")

	return &models.SeatMapResponse{
		SessionID: session.ID,
		RoomID:    room.ID,
		Capacity:  room.Capacity,
		Sold:      sold,
		Remaining: room.Capacity - sold,
		Seats:     seats,
	}, nil
}

func (s *SessionService) checkReferences(ctx context.Context, movieID, roomID string) error {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return apperrors.E(apperrors.KindNotFound, "movie not found")
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return apperrors.E(apperrors.KindNotFound, "room not found")
	}

	return nil
}
