package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, id, password string) (*User, error)
	Authenticate(ctx context.Context, id, password string) (*User, error)
	AddFriend(ctx context.Context, userID, friendID string) (*User, error)
	Friends(ctx context.Context, userID string) ([]string, error)
	Get(ctx context.Context, id string) (*User, error)
}

type Service struct {
	repo       Repository
	log        *slog.Logger
	bcryptCost int
}

func NewService(repo Repository, log *slog.Logger, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		log:        log.With("component", "user_service"),
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account. The credential is stored as a bcrypt
// hash; the inherited plaintext-equality contract is preserved because an
// exact id + credential match is still the only way to authenticate.
func (s *Service) Register(ctx context.Context, id, password string) (*User, error) {
	if id == "" || password == "" {
		return nil, fmt.Errorf("%w: id and password are required", ErrInvalidCredential)
	}

	if _, err := s.repo.Get(ctx, id); err == nil {
		return nil, ErrDuplicateID
	} else if !errors.Is(err, ErrUnknownUser) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           id,
		PasswordHash: string(hash),
		Friends:      []string{},
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.log.Error("failed to create user", "user_id", id, "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", id)
	return u, nil
}

// Authenticate returns the account matching both id and credential, or
// ErrInvalidCredential. An unknown id is reported the same way so the
// response does not leak which part was wrong.
func (s *Service) Authenticate(ctx context.Context, id, password string) (*User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUnknownUser) {
			return nil, ErrInvalidCredential
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	return u, nil
}

// AddFriend appends friendID to the caller's friend list only. The edge is
// directed on purpose: B does not learn about A adding them, and an
// AllFriends share from B stays invisible to A until A adds B back.
func (s *Service) AddFriend(ctx context.Context, userID, friendID string) (*User, error) {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if friendID == u.ID {
		return nil, ErrSelfFriend
	}
	if u.HasFriended(friendID) {
		return nil, ErrAlreadyFriend
	}
	if _, err := s.repo.Get(ctx, friendID); err != nil {
		if errors.Is(err, ErrUnknownUser) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("find friend: %w", err)
	}

	u.Friends = append(u.Friends, friendID)
	if err := s.repo.Update(ctx, u); err != nil {
		s.log.Error("failed to update friend list", "user_id", userID, "error", err)
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("friend added", "user_id", userID, "friend_id", friendID)
	return u, nil
}

func (s *Service) Friends(ctx context.Context, userID string) ([]string, error) {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u.Friends, nil
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.Get(ctx, id)
}
