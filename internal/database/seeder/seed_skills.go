package seeder

import (
	"context"
	"fmt"
	"strings"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/taxonomy"
)

// SkillsSeeder loads the built-in skill catalog into the skills table so
// that API responses and seeded jobs can reference skill rows by name.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "synonyms", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	tax := taxonomy.Default()
	for _, category := range tax.Categories() {
		for _, node := range tax.SkillsByCategory(category) {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, name, category, synonyms) VALUES (gen_random_uuid(), $1, $2, $3) ON CONFLICT (name) DO UPDATE SET category = EXCLUDED.category, synonyms = EXCLUDED.synonyms`,
				node.Canonical,
				node.Category,
				strings.Join(node.Synonyms, ","),
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
