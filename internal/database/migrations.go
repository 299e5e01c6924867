package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createExtensions,
		createMoviesTable,
		createRoomsTable,
		createSessionsTable,
		createSnacksTable,
		createTicketsTable,
		createTicketSnacksTable,
		createSessionsStartIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createExtensions = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    title VARCHAR(100) NOT NULL,
    genre VARCHAR(50) NOT NULL,
    rating VARCHAR(20) NOT NULL,
    duration_min INTEGER NOT NULL CHECK (duration_min BETWEEN 1 AND 500),
    premiere_at TIMESTAMP NOT NULL,
    description VARCHAR(500) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createRoomsTable = `
CREATE TABLE IF NOT EXISTS rooms (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    name VARCHAR(50) NOT NULL,
    capacity INTEGER NOT NULL CHECK (capacity >= 0),
    room_type VARCHAR(10) NOT NULL,

    CHECK (room_type IN ('2D', '3D', 'IMAX'))
);`

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    movie_id UUID NOT NULL REFERENCES movies(id) ON DELETE RESTRICT,
    room_id UUID NOT NULL REFERENCES rooms(id) ON DELETE RESTRICT,
    starts_at TIMESTAMP NOT NULL,
    base_price DECIMAL(10,2) NOT NULL DEFAULT 0 CHECK (base_price >= 0),
    language VARCHAR(20) NOT NULL,
    format VARCHAR(10) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (language IN ('Dubbed', 'Subtitled')),
    CHECK (format IN ('2D', '3D'))
);`

const createSnacksTable = `
CREATE TABLE IF NOT EXISTS snacks (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    name VARCHAR(100) NOT NULL,
    description VARCHAR(500) NOT NULL DEFAULT '',
    unit_price DECIMAL(10,2) NOT NULL DEFAULT 0 CHECK (unit_price >= 0),
    unit_count INTEGER NOT NULL DEFAULT 1 CHECK (unit_count >= 1)
);`

const createTicketsTable = `
CREATE TABLE IF NOT EXISTS tickets (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE RESTRICT,
    customer_name VARCHAR(100) NOT NULL,
    customer_doc VARCHAR(11) NOT NULL,
    seat_label VARCHAR(8) NOT NULL,
    payment_method VARCHAR(10) NOT NULL,
    fare_type VARCHAR(10) NOT NULL,
    total_price DECIMAL(10,2) NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    UNIQUE(session_id, seat_label),
    CHECK (payment_method IN ('Card', 'Pix', 'Cash')),
    CHECK (fare_type IN ('Full', 'Half'))
);`

const createTicketSnacksTable = `
CREATE TABLE IF NOT EXISTS ticket_snacks (
    id SERIAL PRIMARY KEY,
    ticket_id UUID NOT NULL REFERENCES tickets(id) ON DELETE CASCADE,
    snack_id UUID NOT NULL REFERENCES snacks(id) ON DELETE RESTRICT,
    quantity INTEGER NOT NULL CHECK (quantity > 0),

    UNIQUE(ticket_id, snack_id)
);`

const createSessionsStartIndex = `
CREATE INDEX IF NOT EXISTS sessions_starts_at_idx
ON sessions (starts_at);`
