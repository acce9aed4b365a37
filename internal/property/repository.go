package property

import "context"

// ListQuery is a normalized List request as handed to a Repository: the sort
// is one of the known fields and Limit/Offset are within bounds.
type ListQuery struct {
	Filter Filter
	Sort   Sort
	Limit  int
	Offset int
}

// Repository persists properties.
type Repository interface {
	// Create inserts p in a single statement.
	Create(ctx context.Context, p *Property) error
	List(ctx context.Context, q ListQuery) ([]Property, error)
	// Get returns (nil, nil) when no property has the id.
	Get(ctx context.Context, id string) (*Property, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, f Filter) (int, error)
}
