package recruiter

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("recruiter not found")

type Repository interface {
	Create(ctx context.Context, r Recruiter) error
	GetByID(ctx context.Context, id uuid.UUID) (Recruiter, error)
	GetByEmail(ctx context.Context, email string) (Recruiter, error)
}
