package repository

import (
	"context"
	"database/sql"
	"fmt"

	"marquee/internal/database"
	"marquee/internal/models"
)

type MovieRepository struct {
	db *database.DB
}

func NewMovieRepository(db *database.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	query := `
		INSERT INTO movies (title, genre, rating, duration_min, premiere_at, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		movie.Title,
		movie.Genre,
		movie.Rating,
		movie.DurationMin,
		movie.PremiereAt,
		movie.Description,
	).Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)
}

func (r *MovieRepository) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	movie := &models.Movie{}
	query := `
		SELECT id, title, genre, rating, duration_min, premiere_at, description, created_at, updated_at
		FROM movies
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Rating,
		&movie.DurationMin,
		&movie.PremiereAt,
		&movie.Description,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return movie, err
}

// List returns movies ordered by title. A non-empty query filters by
// title or genre; full-text ranking lives in the search package, this
// is the SQL fallback.
func (r *MovieRepository) List(ctx context.Context, query string, page, pageSize int) ([]models.Movie, error) {
	var movies []models.Movie
	var args []interface{}
	argIndex := 1

	sqlQuery := `
		SELECT id, title, genre, rating, duration_min, premiere_at, description, created_at, updated_at
		FROM movies
		WHERE 1=1`

	if query != "" {
		sqlQuery += fmt.Sprintf(" AND (title ILIKE $%d OR genre ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+query+"%")
		argIndex++
	}

	sqlQuery += " ORDER BY title ASC"

	if page > 0 && pageSize > 0 {
		offset := (page - 1) * pageSize
		sqlQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, pageSize, offset)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var movie models.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.Rating,
			&movie.DurationMin,
			&movie.PremiereAt,
			&movie.Description,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}

	return movies, rows.Err()
}

func (r *MovieRepository) Update(ctx context.Context, movie *models.Movie) error {
	query := `
		UPDATE movies
		SET title = $1, genre = $2, rating = $3, duration_min = $4,
		    premiere_at = $5, description = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`

	return r.db.QueryRowContext(ctx, query,
		movie.Title,
		movie.Genre,
		movie.Rating,
		movie.DurationMin,
		movie.PremiereAt,
		movie.Description,
		movie.ID,
	).Scan(&movie.UpdatedAt)
}

func (r *MovieRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return false, restrictConflict(err, "movie still has scheduled sessions")
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
