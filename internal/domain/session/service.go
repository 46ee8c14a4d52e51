package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

var ErrInvalidSession = errors.New("invalid session")

type Servicer interface {
	Create(ctx context.Context, userID string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
	Destroy(ctx context.Context, token string) error
}

// Service issues and validates session tokens. The session is the "current
// user" pointer of the device: it lives until an explicit logout, there is
// no expiry.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "session_service"),
	}
}

func (s *Service) Create(ctx context.Context, userID string) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	// One active session per device: drop any previous pointer first.
	if err := s.repo.DeleteForUser(ctx, userID); err != nil {
		s.log.Warn("failed to clear previous sessions", "user_id", userID, "error", err)
	}

	if err := s.repo.Create(ctx, userID, hashToken(token)); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (string, error) {
	userID, err := s.repo.Lookup(ctx, hashToken(token))
	if err != nil {
		return "", ErrInvalidSession
	}
	return userID, nil
}

func (s *Service) Destroy(ctx context.Context, token string) error {
	if err := s.repo.Delete(ctx, hashToken(token)); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
