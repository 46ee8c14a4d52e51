package ticket

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Save(ctx context.Context, t *Ticket) (int64, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Ticket, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "ticket_service"),
	}
}

// Save upserts a ticket, filling in id, creation time and a random display
// rotation when absent.
func (s *Service) Save(ctx context.Context, t *Ticket) (int64, error) {
	if t.Image == "" {
		return 0, fmt.Errorf("ticket image payload is required")
	}

	if t.ID == 0 {
		t.ID = NewID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.Rotation == 0 {
		t.Rotation = RandomRotation()
	}

	if err := s.repo.Save(ctx, t); err != nil {
		s.log.Error("failed to save ticket", "ticket_id", t.ID, "error", err)
		return 0, fmt.Errorf("save ticket: %w", err)
	}

	s.log.Info("ticket saved", "ticket_id", t.ID)
	return t.ID, nil
}

// Delete removes a ticket; a missing id is a successful no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete ticket", "ticket_id", id, "error", err)
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Ticket, error) {
	tickets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}
