package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/exp/slog"
)

// KVRepository backs the flat entries: category list, bucket list, search
// settings and the legacy pre-migration blob.
type KVRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewKVRepository(storage *Storage, log *slog.Logger) *KVRepository {
	return &KVRepository{
		storage: storage,
		log:     log,
	}
}

// Get returns (nil, nil) for a missing key.
func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return nil, err
	}

	var value string
	err = db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), nil
}

func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
