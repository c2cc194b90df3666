package usecase

import (
	"bytes"
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"talentmatch/internal/domain/application"
	"talentmatch/internal/domain/candidate"
	"talentmatch/internal/domain/job"
	"talentmatch/internal/domain/matching"
	"talentmatch/internal/domain/taxonomy"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrInternal            = errors.New("internal error")
)

// MatchNotifier pushes rescoring events to connected recruiters.
type MatchNotifier interface {
	MatchesUpdated(jobID uuid.UUID, applicationID uuid.UUID, overall int)
}

type RankedCandidate struct {
	CandidateID uuid.UUID           `json:"candidate_id"`
	FullName    string              `json:"full_name"`
	Score       matching.MatchScore `json:"score"`
}

type MatchingUsecase interface {
	CalculateMatch(ctx context.Context, candidateID, jobID uuid.UUID, overrides *matching.WeightOverrides) (matching.MatchScore, error)
	CalculateMatchesForJob(ctx context.Context, jobID uuid.UUID, candidateIDs []uuid.UUID, overrides *matching.WeightOverrides) ([]RankedCandidate, error)
	RefreshApplicationScore(ctx context.Context, applicationID uuid.UUID) (application.Application, error)
}

type Matching struct {
	tax          *taxonomy.Taxonomy
	candidates   candidate.Repository
	jobs         job.Repository
	applications application.Repository

	cache    MatchCache
	cacheTTL time.Duration
	notifier MatchNotifier
	logger   *log.Logger
	now      func() time.Time
}

func NewMatchingUsecase(
	tax *taxonomy.Taxonomy,
	candidates candidate.Repository,
	jobs job.Repository,
	applications application.Repository,
	cache MatchCache,
	cacheTTL time.Duration,
	notifier MatchNotifier,
	logger *log.Logger,
) *Matching {
	return &Matching{
		tax:          tax,
		candidates:   candidates,
		jobs:         jobs,
		applications: applications,
		cache:        cache,
		cacheTTL:     cacheTTL,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

func (u *Matching) CalculateMatch(ctx context.Context, candidateID, jobID uuid.UUID, overrides *matching.WeightOverrides) (matching.MatchScore, error) {
	if candidateID == uuid.Nil {
		return matching.MatchScore{}, ErrCandidateNotFound
	}
	if jobID == uuid.Nil {
		return matching.MatchScore{}, ErrJobNotFound
	}

	weights := matching.MergeWeights(matching.DefaultWeights(), overrides)

	key := MatchCacheKey(candidateID, jobID, weights)
	if u.cache != nil {
		var cached matching.MatchScore
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil && u.logger != nil {
			u.logger.Printf("match cache get failed: %v", err)
		}
		if hit {
			return cached, nil
		}
	}

	score, err := u.calculate(ctx, candidateID, jobID, weights)
	if err != nil {
		return matching.MatchScore{}, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, score, u.cacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("match cache set failed: %v", err)
		}
	}
	return score, nil
}

// CalculateMatchesForJob scores the given candidates against a job. With no
// explicit IDs it scores everyone who applied; that full ranking is the
// cached variant, keyed by job and effective weights.
func (u *Matching) CalculateMatchesForJob(ctx context.Context, jobID uuid.UUID, candidateIDs []uuid.UUID, overrides *matching.WeightOverrides) ([]RankedCandidate, error) {
	if jobID == uuid.Nil {
		return nil, ErrJobNotFound
	}

	weights := matching.MergeWeights(matching.DefaultWeights(), overrides)

	var cacheKey string
	if u.cache != nil && len(candidateIDs) == 0 {
		cacheKey = JobMatchesCacheKey(jobID, weights)
		var cached []RankedCandidate
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil && u.logger != nil {
			u.logger.Printf("job matches cache get failed: %v", err)
		}
		if hit {
			return cached, nil
		}
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	ids := candidateIDs
	if len(ids) == 0 {
		apps, err := u.applications.ListByJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		for _, a := range apps {
			ids = append(ids, a.CandidateID)
		}
	}
	if len(ids) == 0 {
		return []RankedCandidate{}, nil
	}

	candidates, err := u.candidates.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	reqs := u.requirements(j)

	ranked := make([]RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, RankedCandidate{
			CandidateID: c.ID,
			FullName:    c.FullName,
			Score:       matching.Calculate(u.tax, c.Profile(), reqs, weights),
		})
	}

	// Descending by overall; equal scores order by candidate ID so pages
	// are stable across requests.
	sort.SliceStable(ranked, func(i, k int) bool {
		if ranked[i].Score.Overall != ranked[k].Score.Overall {
			return ranked[i].Score.Overall > ranked[k].Score.Overall
		}
		return bytes.Compare(ranked[i].CandidateID[:], ranked[k].CandidateID[:]) < 0
	})

	if cacheKey != "" {
		if err := u.cache.SetJSON(ctx, cacheKey, ranked, u.cacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("job matches cache set failed: %v", err)
		}
	}

	return ranked, nil
}

func (u *Matching) RefreshApplicationScore(ctx context.Context, applicationID uuid.UUID) (application.Application, error) {
	if applicationID == uuid.Nil {
		return application.Application{}, ErrApplicationNotFound
	}

	app, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}

	weights := matching.DefaultWeights()
	score, err := u.calculate(ctx, app.CandidateID, app.JobID, weights)
	if err != nil {
		return application.Application{}, err
	}

	fields := application.MatchFieldsFrom(score, u.now())
	if err := u.applications.UpdateMatchFields(ctx, applicationID, fields); err != nil {
		return application.Application{}, err
	}

	if u.cache != nil {
		if err := u.cache.Delete(ctx, MatchCacheKey(app.CandidateID, app.JobID, weights)); err != nil && u.logger != nil {
			u.logger.Printf("match cache invalidate failed: %v", err)
		}
		if err := u.cache.DeleteByPattern(ctx, JobMatchesCachePattern); err != nil && u.logger != nil {
			u.logger.Printf("job matches cache invalidate failed: %v", err)
		}
	}

	if u.notifier != nil {
		u.notifier.MatchesUpdated(app.JobID, app.ID, score.Overall)
	}

	app.Match = &fields
	return app, nil
}

func (u *Matching) calculate(ctx context.Context, candidateID, jobID uuid.UUID, weights matching.Weights) (matching.MatchScore, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return matching.MatchScore{}, ErrJobNotFound
		}
		return matching.MatchScore{}, err
	}

	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return matching.MatchScore{}, ErrCandidateNotFound
		}
		return matching.MatchScore{}, err
	}

	return matching.Calculate(u.tax, c.Profile(), u.requirements(j), weights), nil
}

// requirements falls back to extracting skills from the description for
// postings that arrived without a structured skill list.
func (u *Matching) requirements(j job.Job) matching.JobRequirements {
	reqs := j.Requirements()
	if len(reqs.RequiredSkills) == 0 && j.Description != "" {
		reqs.RequiredSkills = matching.ExtractSkills(u.tax, j.Description)
	}
	return reqs
}
