package sqlite

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"darak/internal/domain/ticket"
)

type TicketRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewTicketRepository(storage *Storage, log *slog.Logger) *TicketRepository {
	return &TicketRepository{
		storage: storage,
		log:     log,
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO tickets (id, image, rotation, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			image = excluded.image,
			rotation = excluded.rotation,
			created_at = excluded.created_at
	`, t.ID, t.Image, t.Rotation, t.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) List(ctx context.Context) ([]ticket.Ticket, error) {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, image, rotation, created_at FROM tickets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []ticket.Ticket
	for rows.Next() {
		var t ticket.Ticket
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Image, &t.Rotation, &createdAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}

	return tickets, nil
}
