package consumers

import (
	"context"
	"log/slog"

	"marquee/internal/config"
	"marquee/internal/database"
	"marquee/internal/messaging"
	"marquee/internal/repository"
	"marquee/internal/search"
)

type ConsumerService struct {
	db       *database.DB
	nats     *messaging.NATSClient
	repos    *repository.Repositories
	handlers *Handlers
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	// Connect to NATS
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	// Create repositories
	repos := repository.NewRepositories(db)

	// Search backend is optional, movie events are only logged without it
	var searchClient *search.ElasticsearchClient
	if esCfg := config.LoadElasticsearchConfig(); esCfg.URL != "" {
		searchClient, err = search.NewElasticsearchClient(esCfg)
		if err != nil {
			slog.Warn("Search backend unavailable, movie events will not be indexed", "error", err)
			searchClient = nil
		}
	}

	// Create handlers
	handlers := NewHandlers(repos, searchClient)

	return &ConsumerService{
		db:       db,
		nats:     natsClient,
		repos:    repos,
		handlers: handlers,
	}, nil
}

func (cs *ConsumerService) Start() error {
	slog.Info("Starting NATS consumers...")

	// Subscribe to movie catalog events
	_, err := cs.nats.SubscribeQueue("movie.created", "consumers", cs.handlers.HandleMovieChanged)
	if err != nil {
		return err
	}

	_, err = cs.nats.SubscribeQueue("movie.updated", "consumers", cs.handlers.HandleMovieChanged)
	if err != nil {
		return err
	}

	_, err = cs.nats.SubscribeQueue("movie.deleted", "consumers", cs.handlers.HandleMovieDeleted)
	if err != nil {
		return err
	}

	// Subscribe to ticket events
	_, err = cs.nats.SubscribeQueue("ticket.sold", "consumers", cs.handlers.HandleTicketSold)
	if err != nil {
		return err
	}

	_, err = cs.nats.SubscribeQueue("ticket.updated", "consumers", cs.handlers.HandleTicketUpdated)
	if err != nil {
		return err
	}

	_, err = cs.nats.SubscribeQueue("ticket.cancelled", "consumers", cs.handlers.HandleTicketCancelled)
	if err != nil {
		return err
	}

	slog.Info("All consumers started successfully")
	return nil
}

func (cs *ConsumerService) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down consumer service...")

	if cs.nats != nil {
		if err := cs.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if cs.db != nil {
		if err := cs.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
