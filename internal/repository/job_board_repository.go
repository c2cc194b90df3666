package repository

import (
	"context"
	"errors"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/job"

	"github.com/jackc/pgx/v5"
)

type PostgresJobBoardRepository struct {
	db database.DB
}

func NewPostgresJobBoardRepository(db database.DB) *PostgresJobBoardRepository {
	return &PostgresJobBoardRepository{db: db}
}

func (r *PostgresJobBoardRepository) ListEnabled(ctx context.Context) ([]job.Board, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, base_url, enabled, created_at FROM job_boards WHERE enabled ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Board, 0)
	for rows.Next() {
		var b job.Board
		if err := rows.Scan(&b.ID, &b.Name, &b.BaseURL, &b.Enabled, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobBoardRepository) GetByName(ctx context.Context, name string) (job.Board, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, base_url, enabled, created_at FROM job_boards WHERE name = $1`, name)

	var b job.Board
	if err := row.Scan(&b.ID, &b.Name, &b.BaseURL, &b.Enabled, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Board{}, job.ErrNotFound
		}
		return job.Board{}, err
	}
	return b, nil
}
