package seeder

import (
	"context"
	"fmt"

	"talentmatch/internal/database"
)

// JobBoardsSeeder registers the external boards the ingest crawler knows
// how to walk. Disabled rows are kept so operators can toggle boards
// without re-seeding.
type JobBoardsSeeder struct{}

func (JobBoardsSeeder) Name() string { return "job_boards" }

func (JobBoardsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_boards", "id", "name", "base_url", "enabled", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name    string
		BaseURL string
		Enabled bool
	}{
		{Name: "RemoteOK", BaseURL: "https://remoteok.com", Enabled: true},
		{Name: "WeWorkRemotely", BaseURL: "https://weworkremotely.com", Enabled: true},
		{Name: "HackerNewsJobs", BaseURL: "https://news.ycombinator.com/jobs", Enabled: false},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO job_boards (id, name, base_url, enabled) VALUES (gen_random_uuid(), $1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.BaseURL,
			it.Enabled,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
