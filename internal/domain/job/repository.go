package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)

	// UpsertExternal inserts a crawled posting or refreshes an existing
	// one, keyed on (board, external URL). It reports whether a row was
	// created.
	UpsertExternal(ctx context.Context, j Job) (uuid.UUID, bool, error)
}

type BoardRepository interface {
	ListEnabled(ctx context.Context) ([]Board, error)
	GetByName(ctx context.Context, name string) (Board, error)
}
