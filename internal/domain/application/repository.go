package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("application not found")

type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)

	// UpdateMatchFields merges the matching slice of custom_fields into
	// the stored document without touching keys owned by other features.
	UpdateMatchFields(ctx context.Context, id uuid.UUID, fields MatchFields) error
}
