package service

import (
	"context"
	"fmt"

	apperrors "marquee/internal/errors"
	"marquee/internal/models"
	"marquee/internal/repository"
	"marquee/internal/validation"
)

type SnackService struct {
	snackRepo *repository.SnackRepository
}

func NewSnackService(snackRepo *repository.SnackRepository) *SnackService {
	return &SnackService{snackRepo: snackRepo}
}

func (s *SnackService) Create(ctx context.Context, req *models.CreateSnackRequest) (*models.Snack, error) {
	if err := validation.ValidateSnack(req).Err(); err != nil {
		return nil, err
	}

	snack := &models.Snack{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		UnitCount:   req.UnitCount,
	}

	if err := s.snackRepo.Create(ctx, snack); err != nil {
		return nil, fmt.Errorf("failed to create snack: %w", err)
	}

	return snack, nil
}

func (s *SnackService) GetByID(ctx context.Context, id string) (*models.Snack, error) {
	snack, err := s.snackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get snack: %w", err)
	}
	if snack == nil {
		return nil, apperrors.E(apperrors.KindNotFound, "snack not found")
	}
	return snack, nil
}

func (s *SnackService) List(ctx context.Context) ([]models.Snack, error) {
	snacks, err := s.snackRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snacks: %w", err)
	}
	return snacks, nil
}

func (s *SnackService) Update(ctx context.Context, id string, req *models.CreateSnackRequest) (*models.Snack, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateSnack(req).Err(); err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.UnitPrice = req.UnitPrice
	existing.UnitCount = req.UnitCount

	if err := s.snackRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update snack: %w", err)
	}

	return existing, nil
}

func (s *SnackService) Delete(ctx context.Context, id string) error {
	deleted, err := s.snackRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.E(apperrors.KindNotFound, "snack not found")
	}
	return nil
}
