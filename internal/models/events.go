package models

import "time"

// NATS Event Types
const (
	EventTicketSold      = "ticket.sold"
	EventTicketUpdated   = "ticket.updated"
	EventTicketCancelled = "ticket.cancelled"
	EventMovieCreated    = "movie.created"
	EventMovieUpdated    = "movie.updated"
	EventMovieDeleted    = "movie.deleted"
)

// TicketSoldEvent represents a confirmed ticket sale
type TicketSoldEvent struct {
	TicketID   string    `json:"ticket_id"`
	SessionID  string    `json:"session_id"`
	SeatLabel  string    `json:"seat_label"`
	OrderTotal float64   `json:"order_total"`
	Timestamp  time.Time `json:"timestamp"`
}

// TicketUpdatedEvent represents an edit of an existing ticket
type TicketUpdatedEvent struct {
	TicketID  string    `json:"ticket_id"`
	SessionID string    `json:"session_id"`
	SeatLabel string    `json:"seat_label"`
	Timestamp time.Time `json:"timestamp"`
}

// TicketCancelledEvent represents a deleted ticket
type TicketCancelledEvent struct {
	TicketID  string    `json:"ticket_id"`
	SessionID string    `json:"session_id"`
	SeatLabel string    `json:"seat_label"`
	Timestamp time.Time `json:"timestamp"`
}

// MovieChangedEvent is published on movie catalog mutations so the
// search index consumer can keep Elasticsearch in sync
type MovieChangedEvent struct {
	MovieID   string    `json:"movie_id"`
	Timestamp time.Time `json:"timestamp"`
}
