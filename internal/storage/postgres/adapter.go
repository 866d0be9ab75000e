// Package postgres implements storage.Store on PostgreSQL via the pgx
// stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/gatherly/gatherly/internal/model"
	"github.com/gatherly/gatherly/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS activities (
    id            UUID PRIMARY KEY,
    title         TEXT NOT NULL,
    activity_date TIMESTAMPTZ NOT NULL,
    description   TEXT NOT NULL,
    category      TEXT NOT NULL,
    city          TEXT NOT NULL,
    venue         TEXT NOT NULL
)`

// Open connects using the pgx stdlib driver, verifies connectivity and
// applies the schema.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// New opens a connection for the DSN and returns a store.
func New(dsn string) (storage.Store, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	return &PgStore{db: db}, nil
}

// NewWithDB wires a store onto an existing connection.
func NewWithDB(db *sql.DB) storage.Store { return &PgStore{db: db} }

type PgStore struct{ db *sql.DB }

func (s *PgStore) HealthCheck(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *PgStore) Close() error { return s.db.Close() }

func (s *PgStore) ListActivities(ctx context.Context) ([]model.Activity, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, activity_date, description, category, city, venue FROM activities`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		var id string
		if err := rows.Scan(&id, &a.Title, &a.Date, &a.Description, &a.Category, &a.City, &a.Venue); err != nil {
			return nil, err
		}
		if a.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		a.Date = a.Date.UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PgStore) GetActivity(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	var a model.Activity
	row := s.db.QueryRowContext(ctx, `SELECT title, activity_date, description, category, city, venue FROM activities WHERE id = $1`, id.String())
	err := row.Scan(&a.Title, &a.Date, &a.Description, &a.Category, &a.City, &a.Venue)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.ID = id
	a.Date = a.Date.UTC()
	return &a, nil
}

func (s *PgStore) CreateActivity(ctx context.Context, a model.Activity) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO activities (id, title, activity_date, description, category, city, venue) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID.String(), a.Title, a.Date.UTC(), a.Description, a.Category, a.City, a.Venue)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *PgStore) UpdateActivity(ctx context.Context, a model.Activity) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `UPDATE activities SET title=$1, activity_date=$2, description=$3, category=$4, city=$5, venue=$6 WHERE id=$7`,
		a.Title, a.Date.UTC(), a.Description, a.Category, a.City, a.Venue, a.ID.String())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *PgStore) DeleteActivity(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id.String())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
