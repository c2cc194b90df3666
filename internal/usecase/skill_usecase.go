package usecase

import (
	"context"
	"errors"
	"strings"

	"talentmatch/internal/domain/matching"
	"talentmatch/internal/domain/taxonomy"
)

var ErrInvalidInput = errors.New("invalid input")

type SkillUsecase interface {
	NormalizeSkills(ctx context.Context, skills []string) ([]string, error)
	ExtractSkills(ctx context.Context, text string) ([]string, error)
	SuggestSkills(ctx context.Context, skills []string, limit int) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
	SkillsByCategory(ctx context.Context, category string) ([]taxonomy.SkillNode, error)
}

type Skill struct {
	tax *taxonomy.Taxonomy
}

func NewSkillUsecase(tax *taxonomy.Taxonomy) *Skill {
	return &Skill{tax: tax}
}

func (u *Skill) NormalizeSkills(_ context.Context, skills []string) ([]string, error) {
	if len(skills) == 0 {
		return nil, ErrInvalidInput
	}
	return matching.NormalizeSkills(u.tax, skills), nil
}

func (u *Skill) ExtractSkills(_ context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}
	return matching.ExtractSkills(u.tax, text), nil
}

func (u *Skill) SuggestSkills(_ context.Context, skills []string, limit int) ([]string, error) {
	if len(skills) == 0 {
		return nil, ErrInvalidInput
	}
	return matching.SuggestSkills(u.tax, skills, limit), nil
}

func (u *Skill) Categories(_ context.Context) ([]string, error) {
	return u.tax.Categories(), nil
}

func (u *Skill) SkillsByCategory(_ context.Context, category string) ([]taxonomy.SkillNode, error) {
	if strings.TrimSpace(category) == "" {
		return nil, ErrInvalidInput
	}
	return u.tax.SkillsByCategory(category), nil
}
