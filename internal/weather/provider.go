package weather

import (
	"context"
)

// Mode reports whether a provider talks to the network or synthesizes data.
type Mode string

const (
	ModeLive Mode = "live"
	ModeMock Mode = "mock"
)

// Provider abstracts a source of current-conditions snapshots
// (the weatherstack API or the synthetic generator).
type Provider interface {
	Mode() Mode
	Current(ctx context.Context, q Query) (Snapshot, error)
	// Ping performs the cheapest call that proves the provider is usable.
	Ping(ctx context.Context) error
}
