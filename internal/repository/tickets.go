package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"marquee/internal/database"
	apperrors "marquee/internal/errors"
	"marquee/internal/models"
)

type TicketRepository struct {
	db *database.DB
}

func NewTicketRepository(db *database.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketColumns = `id, session_id, customer_name, customer_doc, seat_label,
       payment_method, fare_type, total_price, created_at, updated_at`

func scanTicket(row interface{ Scan(...interface{}) error }, t *models.Ticket) error {
	return row.Scan(
		&t.ID,
		&t.SessionID,
		&t.CustomerName,
		&t.CustomerDoc,
		&t.SeatLabel,
		&t.PaymentMethod,
		&t.FareType,
		&t.TotalPrice,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}

// seatConflict translates the unique (session_id, seat_label) violation
// raised when two sales race for the same seat
func seatConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return apperrors.E(apperrors.KindSeatTaken, "seat is already sold for this session")
	}
	return err
}

// Create inserts the ticket and its snack lines in one transaction.
// The session row is locked first so the capacity re-check is atomic
// against concurrent sales; the unique seat constraint backs the
// duplicate-seat check at the storage boundary.
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket, capacity int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockSessionAndCheckCapacity(ctx, tx, ticket.SessionID, "", capacity); err != nil {
		return err
	}

	query := `
		INSERT INTO tickets (session_id, customer_name, customer_doc, seat_label, payment_method, fare_type, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, query,
		ticket.SessionID,
		ticket.CustomerName,
		ticket.CustomerDoc,
		ticket.SeatLabel,
		ticket.PaymentMethod,
		ticket.FareType,
		ticket.TotalPrice,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
	if err != nil {
		return seatConflict(err)
	}

	if err := insertSnackLines(ctx, tx, ticket.ID, ticket.Snacks); err != nil {
		return err
	}

	return tx.Commit()
}

// Update replaces the ticket in place and rewrites its snack lines,
// re-checking capacity with the ticket's own seat excluded
func (r *TicketRepository) Update(ctx context.Context, ticket *models.Ticket, capacity int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockSessionAndCheckCapacity(ctx, tx, ticket.SessionID, ticket.ID, capacity); err != nil {
		return err
	}

	query := `
		UPDATE tickets
		SET session_id = $1, customer_name = $2, customer_doc = $3, seat_label = $4,
		    payment_method = $5, fare_type = $6, total_price = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at`

	err = tx.QueryRowContext(ctx, query,
		ticket.SessionID,
		ticket.CustomerName,
		ticket.CustomerDoc,
		ticket.SeatLabel,
		ticket.PaymentMethod,
		ticket.FareType,
		ticket.TotalPrice,
		ticket.ID,
	).Scan(&ticket.UpdatedAt)
	if err != nil {
		return seatConflict(err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM ticket_snacks WHERE ticket_id = $1`, ticket.ID); err != nil {
		return err
	}

	if err := insertSnackLines(ctx, tx, ticket.ID, ticket.Snacks); err != nil {
		return err
	}

	return tx.Commit()
}

// lockSessionAndCheckCapacity takes the session row lock (the write
// serialization point for one session) and re-counts active tickets
func lockSessionAndCheckCapacity(ctx context.Context, tx *sql.Tx, sessionID, excludeTicketID string, capacity int) error {
	var id string
	if err := tx.QueryRowContext(ctx, `SELECT id FROM sessions WHERE id = $1 FOR UPDATE`, sessionID).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return apperrors.E(apperrors.KindNotFound, "session not found")
		}
		return err
	}

	var sold int
	countQuery := `SELECT COUNT(*) FROM tickets WHERE session_id = $1 AND id != COALESCE(NULLIF($2, ''), '00000000-0000-0000-0000-000000000000')::uuid`
	if err := tx.QueryRowContext(ctx, countQuery, sessionID, excludeTicketID).Scan(&sold); err != nil {
		return err
	}

	if sold >= capacity {
		return apperrors.E(apperrors.KindCapacityExceeded, "session capacity exhausted")
	}

	return nil
}

func insertSnackLines(ctx context.Context, tx *sql.Tx, ticketID string, snacks []models.TicketSnack) error {
	for _, line := range snacks {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO ticket_snacks (ticket_id, snack_id, quantity) VALUES ($1, $2, $3)`,
			ticketID, line.SnackID, line.Quantity)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	ticket := &models.Ticket{}
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	err := scanTicket(r.db.QueryRowContext(ctx, query, id), ticket)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snacks, err := r.getSnackLines(ctx, ticket.ID)
	if err != nil {
		return nil, err
	}
	ticket.Snacks = snacks

	return ticket, nil
}

func (r *TicketRepository) List(ctx context.Context) ([]models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY created_at DESC`
	return r.queryTickets(ctx, query)
}

// ListBySession returns all active tickets of a session, the input of
// the occupancy validator
func (r *TicketRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE session_id = $1 ORDER BY seat_label ASC`
	return r.queryTickets(ctx, query, sessionID)
}

func (r *TicketRepository) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets WHERE session_id = $1`, sessionID).Scan(&count)
	return count, err
}

func (r *TicketRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *TicketRepository) queryTickets(ctx context.Context, query string, args ...interface{}) ([]models.Ticket, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		var ticket models.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tickets {
		snacks, err := r.getSnackLines(ctx, tickets[i].ID)
		if err != nil {
			return nil, err
		}
		tickets[i].Snacks = snacks
	}

	return tickets, nil
}

func (r *TicketRepository) getSnackLines(ctx context.Context, ticketID string) ([]models.TicketSnack, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT snack_id, quantity FROM ticket_snacks WHERE ticket_id = $1 ORDER BY id ASC`, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.TicketSnack
	for rows.Next() {
		var line models.TicketSnack
		if err := rows.Scan(&line.SnackID, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}
