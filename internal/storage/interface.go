// Package storage defines the persistence interface for activities.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/gatherly/gatherly/internal/model"
)

// Store is the request-scoped persistence handle used by handlers.
// Mutating methods report the number of rows affected so callers can
// distinguish "nothing matched" from an infrastructure fault.
type Store interface {
	ListActivities(ctx context.Context) ([]model.Activity, error)
	// GetActivity returns nil (and no error) when the id is unknown.
	GetActivity(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	CreateActivity(ctx context.Context, a model.Activity) (int64, error)
	// UpdateActivity replaces the whole record at a.ID.
	UpdateActivity(ctx context.Context, a model.Activity) (int64, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) (int64, error)

	HealthCheck(ctx context.Context) error
	Close() error
}
