package repository

import (
	"context"
	"encoding/json"
	"errors"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, candidate_id, status) VALUES ($1, $2, $3, $4)`,
		a.ID, a.JobID, a.CandidateID, a.Status,
	)
	return err
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_id, candidate_id, status, custom_fields, created_at, updated_at
		 FROM applications WHERE id = $1`,
		id,
	)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, job_id, candidate_id, status, custom_fields, created_at, updated_at
		 FROM applications WHERE job_id = $1`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateMatchFields(ctx context.Context, id uuid.UUID, fields application.MatchFields) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	affected, err := r.db.Exec(ctx,
		`UPDATE applications SET custom_fields = custom_fields || $2::jsonb, updated_at = now() WHERE id = $1`,
		id, patch,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return application.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(s scanner) (application.Application, error) {
	var a application.Application
	var customFields []byte
	if err := s.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.Status, &customFields, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return application.Application{}, err
	}

	if len(customFields) > 0 {
		var probe struct {
			MatchScore *int `json:"match_score"`
		}
		if err := json.Unmarshal(customFields, &probe); err == nil && probe.MatchScore != nil {
			var fields application.MatchFields
			if err := json.Unmarshal(customFields, &fields); err == nil {
				a.Match = &fields
			}
		}
	}
	return a, nil
}
