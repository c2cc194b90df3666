package application

import (
	"time"

	"talentmatch/internal/domain/matching"

	"github.com/google/uuid"
)

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	Status      string
	Match       *MatchFields
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MatchFields is the slice of an application's custom fields owned by the
// matching engine. It is written as a partial JSONB merge so fields set by
// other subsystems survive a rescore.
type MatchFields struct {
	MatchScore          int                      `json:"match_score"`
	MatchBreakdown      matching.BreakdownScores `json:"match_breakdown"`
	SkillGaps           []string                 `json:"skill_gaps"`
	MatchReasons        []string                 `json:"match_reasons"`
	LastMatchCalculated time.Time                `json:"last_match_calculated"`
}

func MatchFieldsFrom(score matching.MatchScore, at time.Time) MatchFields {
	return MatchFields{
		MatchScore:          score.Overall,
		MatchBreakdown:      score.Breakdown.Scores(),
		SkillGaps:           score.SkillGaps,
		MatchReasons:        score.Reasons,
		LastMatchCalculated: at.UTC(),
	}
}
