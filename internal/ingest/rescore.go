package ingest

import (
	"context"
	"log"

	"talentmatch/internal/domain/application"
	"talentmatch/internal/usecase"

	"github.com/google/uuid"
)

// Rescorer refreshes the stored match score of every application on the
// jobs a crawl touched, reusing the crawl worker pool.
type Rescorer struct {
	applications application.Repository
	matcher      usecase.MatchingUsecase
	logger       *log.Logger
	workers      int
}

func NewRescorer(applications application.Repository, matcher usecase.MatchingUsecase, workers int, logger *log.Logger) *Rescorer {
	if workers <= 0 {
		workers = 4
	}
	return &Rescorer{
		applications: applications,
		matcher:      matcher,
		logger:       logger,
		workers:      workers,
	}
}

func (r *Rescorer) RescoreJobs(ctx context.Context, jobIDs []uuid.UUID) (int, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}

	pool := NewWorkerPool(r.workers, r.workers*2)
	results := pool.Run(ctx)

	submitted := 0
submitting:
	for _, jobID := range jobIDs {
		apps, err := r.applications.ListByJob(ctx, jobID)
		if err != nil {
			if r.logger != nil {
				r.logger.Printf("rescore list applications failed | job=%s err=%v", jobID, err)
			}
			continue
		}
		for _, a := range apps {
			appID := a.ID
			if !pool.Submit(ctx, func(ctx context.Context) error {
				_, err := r.matcher.RefreshApplicationScore(ctx, appID)
				return err
			}) {
				break submitting
			}
			submitted++
		}
	}

	pool.Close()

	failed := 0
	for res := range results {
		if res.Err != nil {
			failed++
			if r.logger != nil {
				r.logger.Printf("rescore failed | err=%v", res.Err)
			}
		}
	}

	return submitted - failed, nil
}
