package service

import (
	"context"
	"fmt"
	"time"

	apperrors "marquee/internal/errors"
	"marquee/internal/logger"
	"marquee/internal/messaging"
	"marquee/internal/models"
	"marquee/internal/repository"
	"marquee/internal/search"
	"marquee/internal/validation"
)

type MovieService struct {
	movieRepo    *repository.MovieRepository
	sessionRepo  *repository.SessionRepository
	natsClient   *messaging.NATSClient
	searchClient *search.ElasticsearchClient
}

func NewMovieService(movieRepo *repository.MovieRepository, sessionRepo *repository.SessionRepository, natsClient *messaging.NATSClient, searchClient *search.ElasticsearchClient) *MovieService {
	return &MovieService{
		movieRepo:    movieRepo,
		sessionRepo:  sessionRepo,
		natsClient:   natsClient,
		searchClient: searchClient,
	}
}

func (s *MovieService) Create(ctx context.Context, req *models.CreateMovieRequest) (*models.Movie, error) {
	if err := validation.ValidateMovie(req).Err(); err != nil {
		return nil, err
	}

	premiereAt, err := validation.ParseDate(req.PremiereAt)
	if err != nil {
		return nil, apperrors.E(apperrors.KindMissingField, "premiere date must be YYYY-MM-DD")
	}

	movie := &models.Movie{
		Title:       req.Title,
		Genre:       req.Genre,
		Rating:      req.Rating,
		DurationMin: req.DurationMin,
		PremiereAt:  premiereAt,
		Description: req.Description,
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	s.publishMovieEvent(ctx, models.EventMovieCreated, movie.ID)

	return movie, nil
}

func (s *MovieService) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return nil, apperrors.E(apperrors.KindNotFound, "movie not found")
	}
	return movie, nil
}

// List returns movies. When a text query is given and the search
// backend is configured, it answers from Elasticsearch; any search
// failure falls back to the SQL ILIKE filter.
func (s *MovieService) List(ctx context.Context, query string, page, pageSize int) ([]models.Movie, error) {
	if query != "" && s.searchClient != nil {
		movies, err := s.searchClient.Search(ctx, query, "", page, pageSize)
		if err == nil {
			return movies, nil
		}
		logger.WithContext(ctx).Warn("Search backend failed, falling back to SQL",
			"error", err,
			"query", query)
	}

	movies, err := s.movieRepo.List(ctx, query, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (s *MovieService) Update(ctx context.Context, id string, req *models.CreateMovieRequest) (*models.Movie, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateMovie(req).Err(); err != nil {
		return nil, err
	}

	premiereAt, err := validation.ParseDate(req.PremiereAt)
	if err != nil {
		return nil, apperrors.E(apperrors.KindMissingField, "premiere date must be YYYY-MM-DD")
	}

	existing.Title = req.Title
	existing.Genre = req.Genre
	existing.Rating = req.Rating
	existing.DurationMin = req.DurationMin
	existing.PremiereAt = premiereAt
	existing.Description = req.Description

	if err := s.movieRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	s.publishMovieEvent(ctx, models.EventMovieUpdated, existing.ID)

	return existing, nil
}

func (s *MovieService) Delete(ctx context.Context, id string) error {
	deleted, err := s.movieRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.E(apperrors.KindNotFound, "movie not found")
	}

	s.publishMovieEvent(ctx, models.EventMovieDeleted, id)

	return nil
}

func (s *MovieService) publishMovieEvent(ctx context.Context, eventType, movieID string) {
	event := models.MovieChangedEvent{
		MovieID:   movieID,
		Timestamp: time.Now(),
	}

	if err := s.natsClient.Publish(eventType, event); err != nil {
		// Log error but don't fail the operation
		logger.WithContext(ctx).Error("Failed to publish movie event",
			"error", err,
			"movie_id", movieID,
			"event_type", eventType)
	}
}
