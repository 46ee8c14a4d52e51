package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/exp/slog"

	"darak/internal/domain/record"
)

// legacyBlobKey is where the old flat export lands when a database from a
// previous install is imported wholesale.
const legacyBlobKey = "spacelog_records"

type LegacyRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewLegacyRepository(storage *Storage, log *slog.Logger) *LegacyRepository {
	return &LegacyRepository{
		storage: storage,
		log:     log,
	}
}

// Blob returns the raw pre-migration payload, or nil when none is pending.
func (r *LegacyRepository) Blob(ctx context.Context) ([]byte, error) {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return nil, err
	}

	var value string
	err = db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, legacyBlobKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read legacy blob: %w", err)
	}
	return []byte(value), nil
}

// Commit writes the migrated records and drops the source blob in one
// transaction. A failure anywhere leaves the blob in place for a retry.
func (r *LegacyRepository) Commit(ctx context.Context, records []record.Record) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", record.ErrTransaction, err)
	}
	defer tx.Rollback()

	for i := range records {
		if err := execSaveRecord(ctx, tx, &records[i]); err != nil {
			return fmt.Errorf("%w: migrate record %d: %v", record.ErrTransaction, records[i].ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, legacyBlobKey); err != nil {
		return fmt.Errorf("%w: clear legacy blob: %v", record.ErrTransaction, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", record.ErrTransaction, err)
	}
	return nil
}
