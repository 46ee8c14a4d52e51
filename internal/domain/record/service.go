package record

import (
	"context"
	"fmt"
	gosync "sync"

	"golang.org/x/exp/slog"
)

// Servicer is the record-store contract the presentation layer calls.
type Servicer interface {
	Save(ctx context.Context, rec *Record, viewer *Viewer) (int64, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	ListByDate(ctx context.Context, date string) ([]Record, error)
	Refresh(ctx context.Context, viewer *Viewer) ([]Record, error)
	Snapshot() []Record
}

// Service owns the in-memory snapshot of visible records. The snapshot is
// point-in-time: there are no change notifications, callers Refresh after
// any mutation.
type Service struct {
	repo Repository
	log  *slog.Logger

	mu       gosync.RWMutex
	snapshot []Record
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "record_service"),
	}
}

// Save upserts a record. A missing id gets a creation-timestamp id. A record
// without an owner is claimed by the supplied viewer, if any; an owner
// already present is kept. SharedWith is normalized so every stored record
// has a well-defined sharing field.
func (s *Service) Save(ctx context.Context, rec *Record, viewer *Viewer) (int64, error) {
	if rec.Date == "" {
		return 0, fmt.Errorf("%w: date is required", ErrInvalidData)
	}

	if rec.ID == 0 {
		rec.ID = NewID()
	}
	if rec.OwnerID == "" && viewer != nil {
		rec.OwnerID = viewer.ID
	}
	if rec.SharedWith == nil {
		rec.SharedWith = []string{}
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		s.log.Error("failed to save record", "record_id", rec.ID, "error", err)
		return 0, fmt.Errorf("save record: %w", err)
	}

	s.log.Info("record saved", "record_id", rec.ID, "date", rec.Date, "category", rec.Category)
	return rec.ID, nil
}

// Delete removes a record. Deleting an id that does not exist reports
// success without touching the store.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete record", "record_id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.Info("record deleted", "record_id", id)
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Record, error) {
	return s.repo.Get(ctx, id)
}

// List returns every stored record regardless of viewer. Backup and
// recovery go through here; presentation code wants Refresh instead.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]Record, error) {
	records, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list records by date: %w", err)
	}
	return records, nil
}

// Refresh reloads the store and replaces the snapshot with the subset the
// viewer may observe.
func (s *Service) Refresh(ctx context.Context, viewer *Viewer) ([]Record, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh records: %w", err)
	}

	visible := Visible(viewer, all)

	s.mu.Lock()
	s.snapshot = visible
	s.mu.Unlock()

	s.log.Debug("snapshot refreshed", "total", len(all), "visible", len(visible))
	return s.Snapshot(), nil
}

// Snapshot returns a copy of the last refreshed visible set.
func (s *Service) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}
