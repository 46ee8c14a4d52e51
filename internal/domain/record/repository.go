package record

import "context"

// Repository persists records keyed by id, with a secondary lookup by date.
// Save is an upsert; an existing owner id is never overwritten by it.
// Delete reports success when the id does not exist.
type Repository interface {
	Save(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	ListByDate(ctx context.Context, date string) ([]Record, error)
}
