package repository

import (
	"context"
	"errors"
	"time"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/candidate"
	"talentmatch/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, c candidate.Candidate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO candidates (id, full_name, email, title, years_of_experience, city, state, country)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.FullName, c.Email, c.Title, c.YearsOfExperience, c.City, c.State, c.Country,
	)
	if err != nil {
		return err
	}

	for _, skill := range c.Skills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO candidate_skills (candidate_id, skill) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			c.ID, skill,
		); err != nil {
			return err
		}
	}

	for _, edu := range c.Education {
		if _, err := tx.Exec(ctx,
			`INSERT INTO candidate_education (id, candidate_id, level, field, institution, graduation_year)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)`,
			c.ID, edu.Level.String(), edu.Field, edu.Institution, nullableInt(edu.GraduationYear),
		); err != nil {
			return err
		}
	}

	for _, wp := range c.WorkHistory {
		if _, err := tx.Exec(ctx,
			`INSERT INTO candidate_work_history (id, candidate_id, start_date, end_date)
			 VALUES (gen_random_uuid(), $1, $2, $3)`,
			c.ID, wp.StartDate, wp.EndDate,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, full_name, email, title, years_of_experience, city, state, country, created_at, updated_at
		 FROM candidates WHERE id = $1`,
		id,
	)

	var c candidate.Candidate
	err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.Title, &c.YearsOfExperience, &c.City, &c.State, &c.Country, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrNotFound
		}
		return candidate.Candidate{}, err
	}

	if err := r.loadDetails(ctx, &c); err != nil {
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]candidate.Candidate, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, full_name, email, title, years_of_experience, city, state, country, created_at, updated_at
		 FROM candidates WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0, len(ids))
	for rows.Next() {
		var c candidate.Candidate
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Title, &c.YearsOfExperience, &c.City, &c.State, &c.Country, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := r.loadDetails(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *PostgresCandidateRepository) loadDetails(ctx context.Context, c *candidate.Candidate) error {
	skillRows, err := r.db.Query(ctx,
		`SELECT skill FROM candidate_skills WHERE candidate_id = $1 ORDER BY skill`, c.ID)
	if err != nil {
		return err
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var s string
		if err := skillRows.Scan(&s); err != nil {
			return err
		}
		c.Skills = append(c.Skills, s)
	}
	if err := skillRows.Err(); err != nil {
		return err
	}

	eduRows, err := r.db.Query(ctx,
		`SELECT level, field, institution, graduation_year FROM candidate_education WHERE candidate_id = $1`, c.ID)
	if err != nil {
		return err
	}
	defer eduRows.Close()
	for eduRows.Next() {
		var level, field, institution string
		var gradYear *int
		if err := eduRows.Scan(&level, &field, &institution, &gradYear); err != nil {
			return err
		}
		lvl, _ := matching.ParseEducationLevel(level)
		edu := matching.Education{Level: lvl, Field: field, Institution: institution}
		if gradYear != nil {
			edu.GraduationYear = *gradYear
		}
		c.Education = append(c.Education, edu)
	}
	if err := eduRows.Err(); err != nil {
		return err
	}

	workRows, err := r.db.Query(ctx,
		`SELECT start_date, end_date FROM candidate_work_history WHERE candidate_id = $1 ORDER BY start_date`, c.ID)
	if err != nil {
		return err
	}
	defer workRows.Close()
	for workRows.Next() {
		var start time.Time
		var end *time.Time
		if err := workRows.Scan(&start, &end); err != nil {
			return err
		}
		c.WorkHistory = append(c.WorkHistory, matching.WorkPeriod{StartDate: start, EndDate: end})
	}
	return workRows.Err()
}

func nullableInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
