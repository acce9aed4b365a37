package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/i474232898/property-weather/internal/property"
)

// MemoryStore is a concurrency-safe in-memory property store. Data is lost
// when the process exits.
type MemoryStore struct {
	mu sync.RWMutex

	// key: property id
	data map[string]property.Property
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]property.Property),
	}
}

func (s *MemoryStore) Migrate(context.Context) error { return nil }

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

// Create stores p. An existing id is rejected, as a primary key would be.
func (s *MemoryStore) Create(_ context.Context, p *property.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.ID]; exists {
		return errDuplicateID
	}
	s.data[p.ID] = clone(*p)
	return nil
}

func (s *MemoryStore) List(_ context.Context, q property.ListQuery) ([]property.Property, error) {
	s.mu.RLock()
	matched := s.matching(q.Filter)
	s.mu.RUnlock()

	compare := comparator(q.Sort.Field)
	desc := q.Sort.Order != property.SortAsc
	slices.SortFunc(matched, func(a, b property.Property) int {
		c := compare(a, b)
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		if desc {
			return -c
		}
		return c
	})

	if q.Offset >= len(matched) {
		return []property.Property{}, nil
	}
	end := len(matched)
	if q.Limit > 0 && q.Offset+q.Limit < end {
		end = q.Offset + q.Limit
	}
	return matched[q.Offset:end], nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	p = clone(p)
	return &p, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *MemoryStore) Count(_ context.Context, f property.Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matching(f)), nil
}

// matching returns copies of the properties that satisfy f. Callers hold mu.
func (s *MemoryStore) matching(f property.Filter) []property.Property {
	city := strings.ToLower(f.City)
	out := make([]property.Property, 0, len(s.data))
	for _, p := range s.data {
		if city != "" && !strings.Contains(strings.ToLower(p.City), city) {
			continue
		}
		if f.State != "" && p.State != f.State {
			continue
		}
		if f.ZipCode != "" && p.ZipCode != f.ZipCode {
			continue
		}
		out = append(out, clone(p))
	}
	return out
}

func comparator(field property.SortField) func(a, b property.Property) int {
	switch field {
	case property.SortByCity:
		return func(a, b property.Property) int { return cmp.Compare(a.City, b.City) }
	case property.SortByState:
		return func(a, b property.Property) int { return cmp.Compare(a.State, b.State) }
	default:
		return func(a, b property.Property) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}

// clone copies the snapshot slices so callers cannot alias stored data.
func clone(p property.Property) property.Property {
	p.Weather.Current.WeatherIcons = slices.Clone(p.Weather.Current.WeatherIcons)
	p.Weather.Current.WeatherDescriptions = slices.Clone(p.Weather.Current.WeatherDescriptions)
	return p
}
