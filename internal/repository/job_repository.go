package repository

import (
	"context"
	"errors"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/job"
	"talentmatch/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO jobs (id, recruiter_id, board_id, external_url, title, description, required_years, required_level, education_level, education_field, remote_ok)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		j.ID, j.RecruiterID, j.BoardID, j.ExternalURL, j.Title, j.Description,
		j.RequiredYears, seniorityText(j.RequiredLevel), j.EducationLevel.String(), j.EducationField, j.RemoteOK,
	)
	if err != nil {
		return err
	}

	if err := insertJobDetails(ctx, tx, j); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, recruiter_id, board_id, external_url, title, description, required_years,
		        COALESCE(required_level, ''), education_level, education_field, remote_ok, created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	)

	var j job.Job
	var requiredLevel, educationLevel string
	err := row.Scan(&j.ID, &j.RecruiterID, &j.BoardID, &j.ExternalURL, &j.Title, &j.Description,
		&j.RequiredYears, &requiredLevel, &educationLevel, &j.EducationField, &j.RemoteOK, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}

	if lvl, ok := matching.ParseSeniorityLevel(requiredLevel); ok {
		j.RequiredLevel = &lvl
	}
	if lvl, ok := matching.ParseEducationLevel(educationLevel); ok {
		j.EducationLevel = lvl
	}

	if err := r.loadDetails(ctx, &j); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) UpsertExternal(ctx context.Context, j job.Job) (uuid.UUID, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, false, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var id uuid.UUID
	var created bool
	row := tx.QueryRow(ctx,
		`INSERT INTO jobs (id, board_id, external_url, title, description, required_years, required_level, education_level, education_field, remote_ok)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (board_id, external_url) DO UPDATE SET
		     title = EXCLUDED.title,
		     description = EXCLUDED.description,
		     required_years = EXCLUDED.required_years,
		     remote_ok = EXCLUDED.remote_ok,
		     updated_at = now()
		 RETURNING id, (xmax = 0)`,
		j.ID, j.BoardID, j.ExternalURL, j.Title, j.Description,
		j.RequiredYears, seniorityText(j.RequiredLevel), j.EducationLevel.String(), j.EducationField, j.RemoteOK,
	)
	if err := row.Scan(&id, &created); err != nil {
		return uuid.Nil, false, err
	}

	// Crawled skill and location sets replace the previous snapshot.
	if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, id); err != nil {
		return uuid.Nil, false, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM job_locations WHERE job_id = $1`, id); err != nil {
		return uuid.Nil, false, err
	}

	j.ID = id
	if err := insertJobDetails(ctx, tx, j); err != nil {
		return uuid.Nil, false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, false, err
	}
	return id, created, nil
}

func (r *PostgresJobRepository) loadDetails(ctx context.Context, j *job.Job) error {
	skillRows, err := r.db.Query(ctx,
		`SELECT skill, is_required FROM job_skills WHERE job_id = $1 ORDER BY skill`, j.ID)
	if err != nil {
		return err
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var skill string
		var isRequired bool
		if err := skillRows.Scan(&skill, &isRequired); err != nil {
			return err
		}
		if isRequired {
			j.RequiredSkills = append(j.RequiredSkills, skill)
		} else {
			j.PreferredSkills = append(j.PreferredSkills, skill)
		}
	}
	if err := skillRows.Err(); err != nil {
		return err
	}

	locRows, err := r.db.Query(ctx,
		`SELECT city, state, country FROM job_locations WHERE job_id = $1`, j.ID)
	if err != nil {
		return err
	}
	defer locRows.Close()
	for locRows.Next() {
		var loc matching.Location
		if err := locRows.Scan(&loc.City, &loc.State, &loc.Country); err != nil {
			return err
		}
		j.Locations = append(j.Locations, loc)
	}
	return locRows.Err()
}

func insertJobDetails(ctx context.Context, tx database.Tx, j job.Job) error {
	for _, skill := range j.RequiredSkills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_skills (job_id, skill, is_required) VALUES ($1, $2, TRUE) ON CONFLICT DO NOTHING`,
			j.ID, skill,
		); err != nil {
			return err
		}
	}
	for _, skill := range j.PreferredSkills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_skills (job_id, skill, is_required) VALUES ($1, $2, FALSE) ON CONFLICT DO NOTHING`,
			j.ID, skill,
		); err != nil {
			return err
		}
	}
	for _, loc := range j.Locations {
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_locations (id, job_id, city, state, country) VALUES (gen_random_uuid(), $1, $2, $3, $4)`,
			j.ID, loc.City, loc.State, loc.Country,
		); err != nil {
			return err
		}
	}
	return nil
}

func seniorityText(lvl *matching.SeniorityLevel) *string {
	if lvl == nil {
		return nil
	}
	s := lvl.String()
	return &s
}
