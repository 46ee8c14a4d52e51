package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"darak/internal/domain/prefs"
	"darak/internal/domain/record"
	"darak/internal/domain/ticket"
)

// ErrParse marks a bundle that could not be decoded; nothing is restored
// from it.
var ErrParse = errors.New("backup bundle parse failed")

// Bundle is the export/import unit. Records and tickets merge additively at
// the storage layer (re-put by id); the flat collections are overwritten.
type Bundle struct {
	Records    []record.Record    `json:"records"`
	Tickets    []ticket.Ticket    `json:"tickets"`
	BucketList []prefs.BucketItem `json:"bucketList"`
	Categories []string           `json:"categories"`
	Config     prefs.Settings     `json:"config"`
	ExportDate time.Time          `json:"exportDate"`
	IsRecovery bool               `json:"isRecovery,omitempty"`
}

// RecordStore and TicketStore are the storage slices backup needs.
type RecordStore interface {
	List(ctx context.Context) ([]record.Record, error)
	Save(ctx context.Context, rec *record.Record, viewer *record.Viewer) (int64, error)
}

type TicketStore interface {
	List(ctx context.Context) ([]ticket.Ticket, error)
	Save(ctx context.Context, t *ticket.Ticket) (int64, error)
}

type Prefs interface {
	Categories(ctx context.Context) ([]string, error)
	SaveCategories(ctx context.Context, cats []string) error
	BucketList(ctx context.Context) ([]prefs.BucketItem, error)
	SaveBucketList(ctx context.Context, items []prefs.BucketItem) error
	Settings(ctx context.Context) (prefs.Settings, error)
	SaveSettings(ctx context.Context, cfg prefs.Settings) error
}

type Service struct {
	records RecordStore
	tickets TicketStore
	prefs   Prefs
	log     *slog.Logger
}

func NewService(records RecordStore, tickets TicketStore, pf Prefs, log *slog.Logger) *Service {
	return &Service{
		records: records,
		tickets: tickets,
		prefs:   pf,
		log:     log.With("component", "backup"),
	}
}

// Export reads everything straight from the store, deliberately ignoring
// the visibility filter: a backup belongs to the device, not to a viewer.
func (s *Service) Export(ctx context.Context) (*Bundle, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export records: %w", err)
	}

	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export tickets: %w", err)
	}

	bucket, err := s.prefs.BucketList(ctx)
	if err != nil {
		return nil, fmt.Errorf("export bucket list: %w", err)
	}

	cats, err := s.prefs.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("export categories: %w", err)
	}

	cfg, err := s.prefs.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}

	return &Bundle{
		Records:    records,
		Tickets:    tickets,
		BucketList: bucket,
		Categories: cats,
		Config:     cfg,
		ExportDate: time.Now(),
	}, nil
}

// Decode parses a bundle payload.
func Decode(data []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &b, nil
}

// Import restores a bundle. Records and tickets go through the normal put
// path one by one with no viewer supplied, so stored owners survive the
// round trip; flat collections replace whatever is there.
func (s *Service) Import(ctx context.Context, b *Bundle) error {
	for i := range b.Records {
		rec := b.Records[i]
		if _, err := s.records.Save(ctx, &rec, nil); err != nil {
			return fmt.Errorf("restore record %d: %w", rec.ID, err)
		}
	}

	for i := range b.Tickets {
		t := b.Tickets[i]
		if _, err := s.tickets.Save(ctx, &t); err != nil {
			return fmt.Errorf("restore ticket %d: %w", t.ID, err)
		}
	}

	if b.BucketList != nil {
		if err := s.prefs.SaveBucketList(ctx, b.BucketList); err != nil {
			return fmt.Errorf("restore bucket list: %w", err)
		}
	}
	if b.Categories != nil {
		if err := s.prefs.SaveCategories(ctx, b.Categories); err != nil {
			return fmt.Errorf("restore categories: %w", err)
		}
	}
	if b.Config != (prefs.Settings{}) {
		if err := s.prefs.SaveSettings(ctx, b.Config); err != nil {
			return fmt.Errorf("restore settings: %w", err)
		}
	}

	s.log.Info("bundle imported",
		"records", len(b.Records),
		"tickets", len(b.Tickets),
		"export_date", b.ExportDate,
	)
	return nil
}
