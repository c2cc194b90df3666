package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"talentmatch/internal/domain/matching"

	"github.com/google/uuid"
)

type matchCacheKeyInput struct {
	CandidateID string           `json:"candidate_id"`
	JobID       string           `json:"job_id"`
	Weights     matching.Weights `json:"weights"`
}

// MatchCacheKey is stable for a (candidate, job, effective weights) triple,
// so requests with equivalent overrides share an entry.
func MatchCacheKey(candidateID, jobID uuid.UUID, weights matching.Weights) string {
	in := matchCacheKeyInput{
		CandidateID: candidateID.String(),
		JobID:       jobID.String(),
		Weights:     weights,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "match:score:" + hex.EncodeToString(sum[:])
}

// JobMatchesCachePattern matches every cached job ranking, for bulk
// invalidation after application scores change.
const JobMatchesCachePattern = "match:job:*"

// JobMatchesCacheKey is stable for a (job, effective weights) pair and
// covers the full-applicant ranking of that job.
func JobMatchesCacheKey(jobID uuid.UUID, weights matching.Weights) string {
	in := matchCacheKeyInput{JobID: jobID.String(), Weights: weights}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "match:job:" + hex.EncodeToString(sum[:])
}
