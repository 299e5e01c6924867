package repository

import (
	"context"
	"database/sql"

	"marquee/internal/database"
	"marquee/internal/models"
)

type SnackRepository struct {
	db *database.DB
}

func NewSnackRepository(db *database.DB) *SnackRepository {
	return &SnackRepository{db: db}
}

func (r *SnackRepository) Create(ctx context.Context, snack *models.Snack) error {
	query := `
		INSERT INTO snacks (name, description, unit_price, unit_count)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		snack.Name,
		snack.Description,
		snack.UnitPrice,
		snack.UnitCount,
	).Scan(&snack.ID)
}

func (r *SnackRepository) GetByID(ctx context.Context, id string) (*models.Snack, error) {
	snack := &models.Snack{}
	query := `SELECT id, name, description, unit_price, unit_count FROM snacks WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&snack.ID,
		&snack.Name,
		&snack.Description,
		&snack.UnitPrice,
		&snack.UnitCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snack, nil
}

func (r *SnackRepository) List(ctx context.Context) ([]models.Snack, error) {
	query := `SELECT id, name, description, unit_price, unit_count FROM snacks ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snacks []models.Snack
	for rows.Next() {
		var snack models.Snack
		err := rows.Scan(
			&snack.ID,
			&snack.Name,
			&snack.Description,
			&snack.UnitPrice,
			&snack.UnitCount,
		)
		if err != nil {
			return nil, err
		}
		snacks = append(snacks, snack)
	}

	return snacks, rows.Err()
}

func (r *SnackRepository) Update(ctx context.Context, snack *models.Snack) error {
	query := `
		UPDATE snacks
		SET name = $1, description = $2, unit_price = $3, unit_count = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		snack.Name,
		snack.Description,
		snack.UnitPrice,
		snack.UnitCount,
		snack.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SnackRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM snacks WHERE id = $1`, id)
	if err != nil {
		return false, restrictConflict(err, "snack is referenced by sold tickets")
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
