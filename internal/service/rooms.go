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

type RoomService struct {
	roomRepo *repository.RoomRepository
}

func NewRoomService(roomRepo *repository.RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

func (s *RoomService) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.Room, error) {
	if err := validation.ValidateRoom(req).Err(); err != nil {
		return nil, err
	}

	room := &models.Room{
		Name:     req.Name,
		Capacity: req.Capacity,
		RoomType: req.RoomType,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return room, nil
}

func (s *RoomService) GetByID(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, apperrors.E(apperrors.KindNotFound, "room not found")
	}
	return room, nil
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Update(ctx context.Context, id string, req *models.CreateRoomRequest) (*models.Room, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateRoom(req).Err(); err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Capacity = req.Capacity
	existing.RoomType = req.RoomType

	if err := s.roomRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return existing, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	deleted, err := s.roomRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.E(apperrors.KindNotFound, "room not found")
	}
	return nil
}

// SeatLayout returns the derived seat universe of a room
func (s *RoomService) SeatLayout(ctx context.Context, id string) ([]string, error) {
	room, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return seating.Generate(room.Capacity), nil
}
