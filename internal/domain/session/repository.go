package session

import "context"

// Repository persists session tokens, hashed at rest.
type Repository interface {
	Create(ctx context.Context, userID, tokenHash string) error
	Lookup(ctx context.Context, tokenHash string) (string, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteForUser(ctx context.Context, userID string) error
}
