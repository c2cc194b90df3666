package candidate

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("candidate not found")

type Repository interface {
	Create(ctx context.Context, c Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (Candidate, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]Candidate, error)
}
