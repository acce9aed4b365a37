package property

import (
	"context"
	"log/slog"
	"strings"

	"github.com/i474232898/property-weather/internal/observability"
)

// QueryService serves reads and deletes over the stored properties.
type QueryService struct {
	repo    Repository
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewQueryService creates a new QueryService.
func NewQueryService(repo Repository, logger *slog.Logger, metrics *observability.Metrics) *QueryService {
	return &QueryService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

// List returns the properties matching opts. The result is never nil.
func (s *QueryService) List(ctx context.Context, opts ListOptions) ([]Property, error) {
	q, err := normalizeList(opts)
	if err != nil {
		return nil, err
	}

	props, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, newError(KindStorage, err, "failed to fetch properties: %v", err)
	}
	if props == nil {
		props = []Property{}
	}
	return props, nil
}

// Get returns the property with the given id, or (nil, nil) if there is none.
func (s *QueryService) Get(ctx context.Context, id string) (*Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, newError(KindValidation, nil, "property id is required")
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, newError(KindStorage, err, "failed to fetch property: %v", err)
	}
	return p, nil
}

// Delete removes the property with the given id. A missing property is a
// KindNotFound error.
//
// The existence check and the delete are separate statements. A concurrent
// delete of the same id between the two surfaces as KindStorage.
func (s *QueryService) Delete(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, newError(KindValidation, nil, "property id is required")
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return false, newError(KindStorage, err, "failed to delete property: %v", err)
	}
	if existing == nil {
		return false, newError(KindNotFound, nil, "property with id %s not found", id)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, newError(KindStorage, err, "failed to delete property: %v", err)
	}
	if !deleted {
		return false, newError(KindStorage, nil, "failed to delete property: %s was removed concurrently", id)
	}

	s.metrics.PropertiesDeleted.Inc()
	s.logger.Info("property deleted", "id", id)
	return true, nil
}

// Count returns how many properties match f.
func (s *QueryService) Count(ctx context.Context, f Filter) (int, error) {
	n, err := s.repo.Count(ctx, normalizeFilter(f))
	if err != nil {
		return 0, newError(KindStorage, err, "failed to count properties: %v", err)
	}
	return n, nil
}

func normalizeFilter(f Filter) Filter {
	return Filter{
		City:    strings.TrimSpace(f.City),
		State:   strings.ToUpper(strings.TrimSpace(f.State)),
		ZipCode: strings.TrimSpace(f.ZipCode),
	}
}

func normalizeList(opts ListOptions) (ListQuery, error) {
	sort := opts.Sort
	switch sort.Field {
	case "":
		sort.Field = SortByCreatedAt
	case SortByCreatedAt, SortByCity, SortByState:
	default:
		return ListQuery{}, newError(KindValidation, nil, "invalid sort field %q", sort.Field)
	}
	switch sort.Order {
	case "":
		sort.Order = SortDesc
	case SortAsc, SortDesc:
	default:
		return ListQuery{}, newError(KindValidation, nil, "invalid sort order %q", sort.Order)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	return ListQuery{
		Filter: normalizeFilter(opts.Filter),
		Sort:   sort,
		Limit:  limit,
		Offset: offset,
	}, nil
}
