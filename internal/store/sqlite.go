package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/i474232898/property-weather/internal/property"
)

// sqliteTime is fixed width in UTC, so text order is time order.
const sqliteTime = "2006-01-02T15:04:05.000000Z07:00"

// SQLite stores properties in an embedded SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens the database at path. ":memory:" (or an empty path) opens
// a private in-memory database; a "file:" URI is passed through unchanged.
func OpenSQLite(path string) (*SQLite, error) {
	inMemory := path == "" || path == ":memory:"

	dsn := path
	switch {
	case inMemory:
		dsn = ":memory:"
	case strings.HasPrefix(path, "file:"):
	default:
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// One connection: an in-memory database lives and dies with it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if !inMemory {
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements(sqliteTable) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *SQLite) Create(ctx context.Context, p *property.Property) error {
	data, err := encodeWeather(p.Weather)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, insertQuery(question),
		p.ID, p.City, p.Street, p.State, p.ZipCode, p.Lat, p.Lng, string(data),
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	return err
}

func (s *SQLite) List(ctx context.Context, q property.ListQuery) ([]property.Property, error) {
	query, args := listQuery(q, question)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	props := make([]property.Property, 0)
	for rows.Next() {
		p, err := scanSQLite(rows)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

func (s *SQLite) Get(ctx context.Context, id string) (*property.Property, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+propertyColumns+" FROM properties WHERE id = ?", id)

	p, err := scanSQLite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLite) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLite) Count(ctx context.Context, f property.Filter) (int, error) {
	query, args := countQuery(f, question)

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanSQLite(row rowScanner) (property.Property, error) {
	var p property.Property
	var data, created, updated string
	if err := row.Scan(
		&p.ID,
		&p.City,
		&p.Street,
		&p.State,
		&p.ZipCode,
		&p.Lat,
		&p.Lng,
		&data,
		&created,
		&updated,
	); err != nil {
		return property.Property{}, err
	}

	w, err := decodeWeather([]byte(data))
	if err != nil {
		return property.Property{}, err
	}
	p.Weather = w

	if p.CreatedAt, err = parseTime(created); err != nil {
		return property.Property{}, err
	}
	if p.UpdatedAt, err = parseTime(updated); err != nil {
		return property.Property{}, err
	}
	return p, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTime)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(sqliteTime, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
