package legacy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"darak/internal/domain/record"
)

// ErrParse marks a malformed legacy payload. The blob is kept in place so
// the data can still be recovered by hand.
var ErrParse = errors.New("legacy payload parse failed")

// Repository is the storage slice the migrator needs: read the flat
// pre-migration blob, and commit imported records while removing the blob in
// the same transaction.
type Repository interface {
	// Blob returns the raw legacy payload, or nil when it is absent
	// (already migrated).
	Blob(ctx context.Context) ([]byte, error)

	// Commit persists every record and removes the blob atomically; if any
	// record fails, nothing is written and the blob stays.
	Commit(ctx context.Context, records []record.Record) error
}

// Migrator imports records from the old flat key-value format into the
// record store, exactly once.
type Migrator struct {
	repo Repository
	log  *slog.Logger
}

func NewMigrator(repo Repository, log *slog.Logger) *Migrator {
	return &Migrator{
		repo: repo,
		log:  log.With("component", "legacy_migrator"),
	}
}

// Migrate returns the number of imported records. A missing blob is a no-op
// returning 0, which is what makes repeated calls safe. Legacy entries keep
// whatever owner they already had, usually none.
func (m *Migrator) Migrate(ctx context.Context) (int, error) {
	blob, err := m.repo.Blob(ctx)
	if err != nil {
		return 0, fmt.Errorf("read legacy blob: %w", err)
	}
	if len(blob) == 0 {
		return 0, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		m.log.Error("legacy blob is not a record array", "error", err)
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}

	records := make([]record.Record, 0, len(raw))
	for i, entry := range raw {
		var rec record.Record
		if err := json.Unmarshal(entry, &rec); err != nil {
			// One bad entry is skipped and logged, the rest still migrate.
			m.log.Warn("skipping malformed legacy entry", "index", i, "error", err)
			continue
		}
		if rec.ID == 0 {
			rec.ID = record.NewID()
		}
		if rec.SharedWith == nil {
			rec.SharedWith = []string{}
		}
		records = append(records, rec)
	}

	if err := m.repo.Commit(ctx, records); err != nil {
		return 0, fmt.Errorf("commit legacy records: %w", err)
	}

	m.log.Info("legacy records migrated", "count", len(records), "skipped", len(raw)-len(records))
	return len(records), nil
}
