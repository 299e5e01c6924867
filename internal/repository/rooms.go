package repository

import (
	"context"
	"database/sql"

	"marquee/internal/database"
	"marquee/internal/models"
)

type RoomRepository struct {
	db *database.DB
}

func NewRoomRepository(db *database.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (name, capacity, room_type)
		VALUES ($1, $2, $3)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		room.Name,
		room.Capacity,
		room.RoomType,
	).Scan(&room.ID)
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*models.Room, error) {
	room := &models.Room{}
	query := `SELECT id, name, capacity, room_type FROM rooms WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.RoomType,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return room, err
}

func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	query := `SELECT id, name, capacity, room_type FROM rooms ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.RoomType); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms
		SET name = $1, capacity = $2, room_type = $3
		WHERE id = $4`

	_, err := r.db.ExecContext(ctx, query,
		room.Name,
		room.Capacity,
		room.RoomType,
		room.ID,
	)

	return err
}

func (r *RoomRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return false, restrictConflict(err, "room still has scheduled sessions")
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
