package repository

import (
	"context"
	"database/sql"

	"marquee/internal/database"
	"marquee/internal/models"
)

type SessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (movie_id, room_id, starts_at, base_price, language, format)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		session.MovieID,
		session.RoomID,
		session.StartsAt,
		session.BasePrice,
		session.Language,
		session.Format,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	session := &models.Session{}
	query := `
		SELECT id, movie_id, room_id, starts_at, base_price, language, format, created_at, updated_at
		FROM sessions
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.MovieID,
		&session.RoomID,
		&session.StartsAt,
		&session.BasePrice,
		&session.Language,
		&session.Format,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return session, err
}

func (r *SessionRepository) List(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	query := `
		SELECT id, movie_id, room_id, starts_at, base_price, language, format, created_at, updated_at
		FROM sessions
		ORDER BY starts_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var session models.Session
		err := rows.Scan(
			&session.ID,
			&session.MovieID,
			&session.RoomID,
			&session.StartsAt,
			&session.BasePrice,
			&session.Language,
			&session.Format,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

func (r *SessionRepository) Update(ctx context.Context, session *models.Session) error {
	query := `
		UPDATE sessions
		SET movie_id = $1, room_id = $2, starts_at = $3, base_price = $4,
		    language = $5, format = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`

	return r.db.QueryRowContext(ctx, query,
		session.MovieID,
		session.RoomID,
		session.StartsAt,
		session.BasePrice,
		session.Language,
		session.Format,
		session.ID,
	).Scan(&session.UpdatedAt)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return false, restrictConflict(err, "session still has sold tickets")
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
