package dto

import (
	"fmt"

	"talentmatch/internal/domain/application"
	"talentmatch/internal/domain/matching"
)

type WeightOverridesRequest struct {
	Skills     *float64 `json:"skills" validate:"omitempty,gte=0,lte=1"`
	Experience *float64 `json:"experience" validate:"omitempty,gte=0,lte=1"`
	Education  *float64 `json:"education" validate:"omitempty,gte=0,lte=1"`
	Location   *float64 `json:"location" validate:"omitempty,gte=0,lte=1"`
	Title      *float64 `json:"title" validate:"omitempty,gte=0,lte=1"`
}

func (r *WeightOverridesRequest) Domain() *matching.WeightOverrides {
	if r == nil {
		return nil
	}
	return &matching.WeightOverrides{
		Skills:     r.Skills,
		Experience: r.Experience,
		Education:  r.Education,
		Location:   r.Location,
		Title:      r.Title,
	}
}

// ValidateSum rejects overrides whose effective weights drift off a total
// of 1.0 by more than 0.01. The engine itself applies weights as given.
func (r *WeightOverridesRequest) ValidateSum() error {
	merged := matching.MergeWeights(matching.DefaultWeights(), r.Domain())
	if s := merged.Sum(); s < 0.99 || s > 1.01 {
		return fmt.Errorf("weights must sum to 1.0, got %.2f", s)
	}
	return nil
}

type CalculateMatchRequest struct {
	CandidateID string                  `json:"candidate_id" validate:"required,uuid"`
	JobID       string                  `json:"job_id" validate:"required,uuid"`
	Weights     *WeightOverridesRequest `json:"weights"`
}

type MatchScoreResponse struct {
	CandidateID string              `json:"candidate_id"`
	JobID       string              `json:"job_id"`
	Score       matching.MatchScore `json:"score"`
}

type RankedCandidateResponse struct {
	CandidateID string              `json:"candidate_id"`
	FullName    string              `json:"full_name"`
	Overall     int                 `json:"overall"`
	Score       matching.MatchScore `json:"score"`
}

type JobMatchesResponse struct {
	JobID      string                    `json:"job_id"`
	Count      int                       `json:"count"`
	Candidates []RankedCandidateResponse `json:"candidates"`
}

type RefreshApplicationResponse struct {
	ApplicationID string                  `json:"application_id"`
	JobID         string                  `json:"job_id"`
	CandidateID   string                  `json:"candidate_id"`
	Status        string                  `json:"status"`
	Match         application.MatchFields `json:"match"`
}
