package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/i474232898/property-weather/internal/property"
)

// ErrUnsupportedURL is returned by Open for a DATABASE_URL it cannot route.
var ErrUnsupportedURL = errors.New("unsupported database url")

// Store is a property.Repository with its connection lifecycle.
type Store interface {
	property.Repository
	// Migrate creates the properties table and its indexes if missing.
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// Open connects to the store named by databaseURL:
//
//	postgres://... or postgresql://...  PostgreSQL
//	sqlite:<path> or file:<path>        SQLite; sqlite::memory: for a private in-memory database
//	memory:                             process memory, no persistence
func Open(ctx context.Context, databaseURL string) (Store, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return NewPostgres(ctx, databaseURL)
	case strings.HasPrefix(databaseURL, "sqlite:"):
		return OpenSQLite(strings.TrimPrefix(databaseURL, "sqlite:"))
	case strings.HasPrefix(databaseURL, "file:"):
		return OpenSQLite(databaseURL)
	case databaseURL == "memory:":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, redact(databaseURL))
	}
}

// redact drops everything after the scheme so credentials never reach logs.
func redact(databaseURL string) string {
	if i := strings.Index(databaseURL, ":"); i >= 0 {
		return databaseURL[:i+1] + "..."
	}
	return "..."
}

var errDuplicateID = errors.New("duplicate property id")
