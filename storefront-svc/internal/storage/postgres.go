package storage

import (
	"context"
	"database/sql"

	"riko-storefront/storefront-svc/internal/domain"
)

const journalSchema = `
CREATE TABLE IF NOT EXISTS checkout_journal (
	id            SERIAL PRIMARY KEY,
	session_id    TEXT NOT NULL,
	client_id     TEXT NOT NULL,
	restaurant_id TEXT NOT NULL,
	order_id      TEXT,
	step          TEXT NOT NULL,
	succeeded     BOOLEAN NOT NULL,
	detail        TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// PostgresJournal stores one row per checkout submission step.
type PostgresJournal struct {
	DB *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{DB: db}
}

func (r *PostgresJournal) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, journalSchema)
	return err
}

func (r *PostgresJournal) Record(ctx context.Context, entry *domain.JournalEntry) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO checkout_journal (session_id, client_id, restaurant_id, order_id, step, succeeded, detail)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''))
		RETURNING id, created_at
	`, entry.SessionID, entry.ClientID, entry.RestaurantID, entry.OrderID, entry.Step, entry.Succeeded, entry.Detail).
		Scan(&entry.ID, &entry.CreatedAt)
}

func (r *PostgresJournal) ListByClient(ctx context.Context, clientID string, limit int) ([]domain.JournalEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, session_id, client_id, restaurant_id, COALESCE(order_id, ''), step, succeeded, COALESCE(detail, ''), created_at
		FROM checkout_journal
		WHERE client_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, clientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0)
	for rows.Next() {
		var e domain.JournalEntry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.ClientID, &e.RestaurantID, &e.OrderID, &e.Step, &e.Succeeded, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
