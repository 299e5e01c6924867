package consumers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/stan.go"

	"marquee/internal/models"
	"marquee/internal/repository"
	"marquee/internal/search"
)

type Handlers struct {
	repos        *repository.Repositories
	searchClient *search.ElasticsearchClient
}

func NewHandlers(repos *repository.Repositories, searchClient *search.ElasticsearchClient) *Handlers {
	return &Handlers{
		repos:        repos,
		searchClient: searchClient,
	}
}

// HandleMovieChanged re-indexes the movie after a create or update
func (h *Handlers) HandleMovieChanged(m *stan.Msg) {
	var event models.MovieChangedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal movie changed event", "error", err)
		return
	}

	slog.Info("Processing movie changed event", "movie_id", event.MovieID)

	if h.searchClient != nil {
		ctx := context.Background()
		movie, err := h.repos.Movies.GetByID(ctx, event.MovieID)
		if err != nil {
			slog.Error("Failed to get movie", "movie_id", event.MovieID, "error", err)
			return
		}

		// The movie may have been deleted between publish and consume
		if movie != nil {
			if err := h.searchClient.IndexMovie(ctx, movie); err != nil {
				slog.Error("Failed to index movie", "movie_id", event.MovieID, "error", err)
				return
			}
		}
	}

	m.Ack()
}

// HandleMovieDeleted removes the movie from the search index
func (h *Handlers) HandleMovieDeleted(m *stan.Msg) {
	var event models.MovieChangedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal movie deleted event", "error", err)
		return
	}

	slog.Info("Processing movie deleted event", "movie_id", event.MovieID)

	if h.searchClient != nil {
		if err := h.searchClient.DeleteMovie(context.Background(), event.MovieID); err != nil {
			slog.Error("Failed to delete movie from index", "movie_id", event.MovieID, "error", err)
			return
		}
	}

	m.Ack()
}

func (h *Handlers) HandleTicketSold(m *stan.Msg) {
	var event models.TicketSoldEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal ticket sold event", "error", err)
		return
	}

	slog.Info("Ticket sold",
		"ticket_id", event.TicketID,
		"session_id", event.SessionID,
		"seat", event.SeatLabel,
		"order_total", event.OrderTotal)

	// Sales audit trail lives in the log stream. Receipts and
	// notifications would hook in here.

	m.Ack()
}

func (h *Handlers) HandleTicketUpdated(m *stan.Msg) {
	var event models.TicketUpdatedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal ticket updated event", "error", err)
		return
	}

	slog.Info("Ticket updated",
		"ticket_id", event.TicketID,
		"session_id", event.SessionID,
		"seat", event.SeatLabel)

	m.Ack()
}

func (h *Handlers) HandleTicketCancelled(m *stan.Msg) {
	var event models.TicketCancelledEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal ticket cancelled event", "error", err)
		return
	}

	slog.Info("Ticket cancelled",
		"ticket_id", event.TicketID,
		"session_id", event.SessionID,
		"seat", event.SeatLabel)

	m.Ack()
}
