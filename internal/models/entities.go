package models

import (
	"time"
)

// Room types
const (
	RoomType2D   = "2D"
	RoomType3D   = "3D"
	RoomTypeIMAX = "IMAX"
)

// Session languages and formats
const (
	LanguageDubbed    = "Dubbed"
	LanguageSubtitled = "Subtitled"

	Format2D = "2D"
	Format3D = "3D"
)

// Payment methods
const (
	PaymentCard = "Card"
	PaymentPix  = "Pix"
	PaymentCash = "Cash"
)

// Fare types
const (
	FareFull = "Full"
	FareHalf = "Half"
)

// Movie represents a catalog movie
type Movie struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Genre       string    `json:"genre" db:"genre"`
	Rating      string    `json:"rating" db:"rating"`
	DurationMin int       `json:"duration_min" db:"duration_min"`
	PremiereAt  time.Time `json:"premiere_at" db:"premiere_at"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Room represents a cinema room. The seat universe is derived from
// Capacity at read time and never stored.
type Room struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Capacity int    `json:"capacity" db:"capacity"`
	RoomType string `json:"room_type" db:"room_type"`
}

// Session represents a scheduled screening of a movie in a room
type Session struct {
	ID        string    `json:"id" db:"id"`
	MovieID   string    `json:"movie_id" db:"movie_id"`
	RoomID    string    `json:"room_id" db:"room_id"`
	StartsAt  time.Time `json:"starts_at" db:"starts_at"`
	BasePrice float64   `json:"base_price" db:"base_price"`
	Language  string    `json:"language" db:"language"`
	Format    string    `json:"format" db:"format"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Ticket represents a sold ticket. Seat labels are unique per session
// among active tickets, enforced both by the validator and by a DB
// unique constraint.
type Ticket struct {
	ID            string        `json:"id" db:"id"`
	SessionID     string        `json:"session_id" db:"session_id"`
	CustomerName  string        `json:"customer_name" db:"customer_name"`
	CustomerDoc   string        `json:"customer_doc" db:"customer_doc"`
	SeatLabel     string        `json:"seat_label" db:"seat_label"`
	PaymentMethod string        `json:"payment_method" db:"payment_method"`
	FareType      string        `json:"fare_type" db:"fare_type"`
	TotalPrice    float64       `json:"total_price" db:"total_price"`
	Snacks        []TicketSnack `json:"snacks,omitempty"` // Not from tickets table, filled separately
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// TicketSnack represents one snack line attached to a ticket
type TicketSnack struct {
	SnackID  string `json:"snack_id" db:"snack_id"`
	Quantity int    `json:"quantity" db:"quantity"`
}

// Snack represents a snack or combo from the read-only sales catalog
type Snack struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	UnitPrice   float64 `json:"unit_price" db:"unit_price"`
	UnitCount   int     `json:"unit_count" db:"unit_count"`
}
