package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error
	List(ctx context.Context) ([]User, error)
}
