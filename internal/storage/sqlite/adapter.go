// Package sqlite implements storage.Store on a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gatherly/gatherly/internal/model"
	"github.com/gatherly/gatherly/internal/storage"
)

type SqliteStore struct {
	db *sql.DB
}

// New opens (or creates) a SQLite database file and returns a store.
func New(path string) (storage.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &SqliteStore{db: db}, nil
}

// NewWithDB wires a store onto an existing connection (used by tests
// and the factory).
func NewWithDB(db *sql.DB) storage.Store { return &SqliteStore{db: db} }

func (s *SqliteStore) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SqliteStore) Close() error { return s.db.Close() }

func (s *SqliteStore) ListActivities(ctx context.Context) ([]model.Activity, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT Id, Title, ActivityDate, Description, Category, City, Venue FROM Activities`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SqliteStore) GetActivity(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	row := s.db.QueryRowContext(ctx, `SELECT Id, Title, ActivityDate, Description, Category, City, Venue FROM Activities WHERE Id = ?`, id.String())
	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *SqliteStore) CreateActivity(ctx context.Context, a model.Activity) (int64, error) {
	// Cooperative cancellation: never start a write once the request is gone.
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO Activities (Id, Title, ActivityDate, Description, Category, City, Venue) VALUES (?,?,?,?,?,?,?)`,
		a.ID.String(), a.Title, a.Date.UTC().Format(time.RFC3339), a.Description, a.Category, a.City, a.Venue)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SqliteStore) UpdateActivity(ctx context.Context, a model.Activity) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `UPDATE Activities SET Title = ?, ActivityDate = ?, Description = ?, Category = ?, City = ?, Venue = ? WHERE Id = ?`,
		a.Title, a.Date.UTC().Format(time.RFC3339), a.Description, a.Category, a.City, a.Venue, a.ID.String())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SqliteStore) DeleteActivity(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM Activities WHERE Id = ?`, id.String())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(row scanner) (model.Activity, error) {
	var a model.Activity
	var id, date string
	if err := row.Scan(&id, &a.Title, &date, &a.Description, &a.Category, &a.City, &a.Venue); err != nil {
		return model.Activity{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return model.Activity{}, err
	}
	a.ID = parsed
	a.Date, err = time.Parse(time.RFC3339, date)
	if err != nil {
		return model.Activity{}, err
	}
	return a, nil
}
