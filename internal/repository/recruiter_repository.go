package repository

import (
	"context"
	"errors"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/recruiter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresRecruiterRepository struct {
	db database.DB
}

func NewPostgresRecruiterRepository(db database.DB) *PostgresRecruiterRepository {
	return &PostgresRecruiterRepository{db: db}
}

func (r *PostgresRecruiterRepository) Create(ctx context.Context, rec recruiter.Recruiter) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO recruiters (id, email, password_hash, full_name) VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.Email, rec.PasswordHash, rec.FullName,
	)
	return err
}

func (r *PostgresRecruiterRepository) GetByID(ctx context.Context, id uuid.UUID) (recruiter.Recruiter, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, full_name, created_at FROM recruiters WHERE id = $1`, id)
	return scanRecruiter(row)
}

func (r *PostgresRecruiterRepository) GetByEmail(ctx context.Context, email string) (recruiter.Recruiter, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, full_name, created_at FROM recruiters WHERE email = $1`, email)
	return scanRecruiter(row)
}

func scanRecruiter(row database.Row) (recruiter.Recruiter, error) {
	var rec recruiter.Recruiter
	if err := row.Scan(&rec.ID, &rec.Email, &rec.PasswordHash, &rec.FullName, &rec.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruiter.Recruiter{}, recruiter.ErrNotFound
		}
		return recruiter.Recruiter{}, err
	}
	return rec, nil
}
