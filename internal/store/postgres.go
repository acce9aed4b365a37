package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/i474232898/property-weather/internal/property"
)

// Postgres stores properties in PostgreSQL through a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres store backed by a pgx pool.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Postgres) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Postgres) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements(postgresTable) {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *Postgres) Create(ctx context.Context, p *property.Property) error {
	data, err := encodeWeather(p.Weather)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, insertQuery(dollar),
		p.ID, p.City, p.Street, p.State, p.ZipCode, p.Lat, p.Lng, data, p.CreatedAt, p.UpdatedAt)
	return err
}

func (s *Postgres) List(ctx context.Context, q property.ListQuery) ([]property.Property, error) {
	sql, args := listQuery(q, dollar)

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	props := make([]property.Property, 0)
	for rows.Next() {
		p, err := scanPostgres(rows)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

func (s *Postgres) Get(ctx context.Context, id string) (*property.Property, error) {
	row := s.pool.QueryRow(ctx, "SELECT "+propertyColumns+" FROM properties WHERE id = $1", id)

	p, err := scanPostgres(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Postgres) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Postgres) Count(ctx context.Context, f property.Filter) (int, error) {
	sql, args := countQuery(f, dollar)

	var n int
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanPostgres(row rowScanner) (property.Property, error) {
	var p property.Property
	var data []byte
	if err := row.Scan(
		&p.ID,
		&p.City,
		&p.Street,
		&p.State,
		&p.ZipCode,
		&p.Lat,
		&p.Lng,
		&data,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return property.Property{}, err
	}

	w, err := decodeWeather(data)
	if err != nil {
		return property.Property{}, err
	}
	p.Weather = w
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
