package property

import (
	"context"
	"sync"

	"github.com/i474232898/property-weather/internal/weather"
)

// fakeRepo is an in-memory Repository that records how it was called.
type fakeRepo struct {
	mu    sync.Mutex
	items map[string]Property

	createErr error
	listErr   error
	getErr    error
	deleteErr error
	countErr  error
	// deleteMisses makes Delete report no row removed, as if a concurrent
	// delete won the race.
	deleteMisses bool

	listResult []Property
	lastList   ListQuery
	lastCount  Filter
	calls      map[string]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]Property{}, calls: map[string]int{}}
}

func (r *fakeRepo) called(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[op]
}

func (r *fakeRepo) totalCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		n += c
	}
	return n
}

func (r *fakeRepo) Create(_ context.Context, p *Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["create"]++
	if r.createErr != nil {
		return r.createErr
	}
	r.items[p.ID] = *p
	return nil
}

func (r *fakeRepo) List(_ context.Context, q ListQuery) ([]Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["list"]++
	r.lastList = q
	return r.listResult, r.listErr
}

func (r *fakeRepo) Get(_ context.Context, id string) (*Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["get"]++
	if r.getErr != nil {
		return nil, r.getErr
	}
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["delete"]++
	if r.deleteErr != nil {
		return false, r.deleteErr
	}
	if r.deleteMisses {
		return false, nil
	}
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

func (r *fakeRepo) Count(_ context.Context, f Filter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["count"]++
	r.lastCount = f
	return len(r.items), r.countErr
}

// fakeWeather returns a fixed snapshot or error.
type fakeWeather struct {
	snap  weather.Snapshot
	err   error
	calls int
	last  weather.Query
}

func (f *fakeWeather) Current(_ context.Context, q weather.Query) (weather.Snapshot, error) {
	f.calls++
	f.last = q
	return f.snap, f.err
}

func sampleSnapshot() weather.Snapshot {
	return weather.Snapshot{
		Request:  weather.Request{Type: "City", Query: "Austin, TX 78701", Language: "en", Unit: "m"},
		Location: weather.Location{Name: "Austin", Region: "Texas", Lat: "30.267", Lon: "-97.743"},
		Current:  weather.Current{Temperature: 31, WeatherDescriptions: []string{"Partly cloudy"}},
	}
}
