package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type SessionRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewSessionRepository(storage *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		storage: storage,
		log:     log,
	}
}

func (r *SessionRepository) Create(ctx context.Context, userID, tokenHash string) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO sessions (token_hash, user_id, created_at) VALUES (?, ?, ?)`,
		tokenHash, userID, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Lookup(ctx context.Context, tokenHash string) (string, error) {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return "", err
	}

	var userID string
	err = db.QueryRowContext(ctx,
		`SELECT user_id FROM sessions WHERE token_hash = ?`, tokenHash).Scan(&userID)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("session not found")
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	return userID, nil
}

func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = ?`, tokenHash); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteForUser(ctx context.Context, userID string) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}
	return nil
}
