package seeder

import (
	"context"
	"fmt"

	"talentmatch/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// DemoRecruiterSeeder creates a recruiter account for local development.
// It never runs over an existing row, so a changed password in an
// environment is left alone.
type DemoRecruiterSeeder struct {
	Email    string
	Password string
}

func (DemoRecruiterSeeder) Name() string { return "demo_recruiter" }

func (s DemoRecruiterSeeder) Run(ctx context.Context, db database.DB) error {
	email := s.Email
	if email == "" {
		email = "recruiter@talentmatch.local"
	}
	password := s.Password
	if password == "" {
		password = "changeme123"
	}

	if err := EnsureTableColumns(ctx, db, "recruiters", "id", "email", "password_hash", "full_name", "created_at"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = db.Exec(
		ctx,
		`INSERT INTO recruiters (id, email, password_hash, full_name) VALUES (gen_random_uuid(), $1, $2, $3) ON CONFLICT (email) DO NOTHING`,
		email,
		string(hash),
		"Demo Recruiter",
	)
	return err
}
