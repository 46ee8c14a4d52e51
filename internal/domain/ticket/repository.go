package ticket

import "context"

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Ticket, error)
}
