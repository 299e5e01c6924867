package service

import (
	"context"
	"fmt"
	"time"

	apperrors "marquee/internal/errors"
	"marquee/internal/logger"
	"marquee/internal/messaging"
	"marquee/internal/metrics"
	"marquee/internal/models"
	"marquee/internal/pricing"
	"marquee/internal/repository"
	"marquee/internal/seating"
	"marquee/internal/validation"
)

type TicketService struct {
	ticketRepo  *repository.TicketRepository
	sessionRepo *repository.SessionRepository
	roomRepo    *repository.RoomRepository
	snackRepo   *repository.SnackRepository
	natsClient  *messaging.NATSClient
}

func NewTicketService(ticketRepo *repository.TicketRepository, sessionRepo *repository.SessionRepository, roomRepo *repository.RoomRepository, snackRepo *repository.SnackRepository, natsClient *messaging.NATSClient) *TicketService {
	return &TicketService{
		ticketRepo:  ticketRepo,
		sessionRepo: sessionRepo,
		roomRepo:    roomRepo,
		snackRepo:   snackRepo,
		natsClient:  natsClient,
	}
}

// Sell validates a sale end to end, prices it and persists the ticket.
// No write happens before every check has passed.
func (s *TicketService) Sell(ctx context.Context, req *models.SellTicketRequest) (*models.SellTicketResponse, error) {
	resp, err := s.sell(ctx, req, "")
	if err != nil {
		s.countRejection(err)
		return nil, err
	}

	metrics.TicketsSold.Inc()
	s.publishTicketEvent(ctx, models.EventTicketSold, models.TicketSoldEvent{
		TicketID:   resp.Ticket.ID,
		SessionID:  resp.Ticket.SessionID,
		SeatLabel:  resp.Ticket.SeatLabel,
		OrderTotal: resp.OrderTotal,
		Timestamp:  time.Now(),
	})

	return resp, nil
}

// Update re-runs the full sale validation for an existing ticket. The
// ticket's own seat is excluded from the occupancy and capacity
// checks, so keeping the same seat is always allowed.
func (s *TicketService) Update(ctx context.Context, id string, req *models.SellTicketRequest) (*models.SellTicketResponse, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp, err := s.sell(ctx, req, existing.ID)
	if err != nil {
		s.countRejection(err)
		return nil, err
	}

	s.publishTicketEvent(ctx, models.EventTicketUpdated, models.TicketUpdatedEvent{
		TicketID:  resp.Ticket.ID,
		SessionID: resp.Ticket.SessionID,
		SeatLabel: resp.Ticket.SeatLabel,
		Timestamp: time.Now(),
	})

	return resp, nil
}

func (s *TicketService) sell(ctx context.Context, req *models.SellTicketRequest, excludeTicketID string) (*models.SellTicketResponse, error) {
	if err := validation.ValidateTicket(req).Err(); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, apperrors.E(apperrors.KindNotFound, "session not found")
	}

	room, err := s.roomRepo.GetByID(ctx, session.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, apperrors.E(apperrors.KindNotFound, "room not found")
	}

	tickets, err := s.ticketRepo.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session tickets: %w", err)
	}

	seatLabel := seating.Normalize(req.SeatLabel)
	if err := seating.ValidateSale(room.Capacity, tickets, seatLabel, excludeTicketID); err != nil {
		return nil, err
	}

	cart, err := s.buildCart(ctx, req.Snacks)
	if err != nil {
		return nil, err
	}

	ticketPrice := pricing.TicketPrice(session.BasePrice, req.FareType)
	orderTotal := pricing.OrderTotal(ticketPrice, cart)

	ticket := &models.Ticket{
		ID:            excludeTicketID,
		SessionID:     session.ID,
		CustomerName:  req.CustomerName,
		CustomerDoc:   validation.NormalizeCPF(req.CustomerDoc),
		SeatLabel:     seatLabel,
		PaymentMethod: req.PaymentMethod,
		FareType:      req.FareType,
		TotalPrice:    orderTotal,
		Snacks:        snackLines(cart),
	}

	if excludeTicketID == "" {
		err = s.ticketRepo.Create(ctx, ticket, room.Capacity)
	} else {
		err = s.ticketRepo.Update(ctx, ticket, room.Capacity)
	}
	if err != nil {
		if apperrors.KindOf(err) != "" {
			return nil, err
		}
		return nil, fmt.Errorf("failed to store ticket: %w", err)
	}

	return &models.SellTicketResponse{
		Ticket:        *ticket,
		TicketPrice:   ticketPrice,
		SnackSubtotal: cart.Subtotal(),
		OrderTotal:    orderTotal,
	}, nil
}

func (s *TicketService) buildCart(ctx context.Context, lines []models.TicketSnackInput) (*pricing.Cart, error) {
	cart := pricing.NewCart()
	for _, line := range lines {
		snack, err := s.snackRepo.GetByID(ctx, line.SnackID)
		if err != nil {
			return nil, fmt.Errorf("failed to get snack: %w", err)
		}
		if snack == nil {
			return nil, apperrors.Ef(apperrors.KindNotFound, "snack %s not found", line.SnackID)
		}
		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		cart.AddN(*snack, quantity)
	}
	return cart, nil
}

func snackLines(cart *pricing.Cart) []models.TicketSnack {
	items := cart.Items()
	if len(items) == 0 {
		return nil
	}
	lines := make([]models.TicketSnack, len(items))
	for i, item := range items {
		lines[i] = models.TicketSnack{
			SnackID:  item.Snack.ID,
			Quantity: item.Quantity,
		}
	}
	return lines
}

func (s *TicketService) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if ticket == nil {
		return nil, apperrors.E(apperrors.KindNotFound, "ticket not found")
	}
	return ticket, nil
}

func (s *TicketService) List(ctx context.Context, sessionID string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	var err error
	if sessionID != "" {
		tickets, err = s.ticketRepo.ListBySession(ctx, sessionID)
	} else {
		tickets, err = s.ticketRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	ticket, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.ticketRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.E(apperrors.KindNotFound, "ticket not found")
	}

	s.publishTicketEvent(ctx, models.EventTicketCancelled, models.TicketCancelledEvent{
		TicketID:  ticket.ID,
		SessionID: ticket.SessionID,
		SeatLabel: ticket.SeatLabel,
		Timestamp: time.Now(),
	})

	return nil
}

func (s *TicketService) publishTicketEvent(ctx context.Context, eventType string, event interface{}) {
	if err := s.natsClient.Publish(eventType, event); err != nil {
		// Log error but don't fail the operation
		logger.WithContext(ctx).Error("Failed to publish ticket event",
			"error", err,
			"event_type", eventType)
	}
}

func (s *TicketService) countRejection(err error) {
	switch kind := apperrors.KindOf(err); kind {
	case apperrors.KindInvalidSeat, apperrors.KindCapacityExceeded, apperrors.KindSeatTaken,
		apperrors.KindInvalidCustomerID, apperrors.KindMissingField:
		metrics.SalesRejected.WithLabelValues(string(kind)).Inc()
	}
}
