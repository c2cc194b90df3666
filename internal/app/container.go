package app

import (
	"context"
	"log"
	"time"

	"talentmatch/internal/config"
	"talentmatch/internal/database"
	"talentmatch/internal/database/migration"
	dbpostgres "talentmatch/internal/database/postgres"
	"talentmatch/internal/database/seeder"
	"talentmatch/internal/domain/application"
	"talentmatch/internal/domain/candidate"
	"talentmatch/internal/domain/job"
	"talentmatch/internal/domain/recruiter"
	"talentmatch/internal/infrastructure/cache"
	"talentmatch/internal/repository"
)

// Container holds the process-wide infrastructure shared by the server
// and ingest binaries.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger

	Candidates   candidate.Repository
	Jobs         job.Repository
	Boards       job.BoardRepository
	Applications application.Repository
	Recruiters   recruiter.Repository
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	if err := (migration.Runner{Dir: "migrations"}).Run(migCtx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.App.RunSeeders {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer seedCancel()
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(seedCtx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Container{
		Config:       cfg,
		DB:           db,
		Cache:        cache.NewRedis(cfg.Redis, logger),
		Logger:       logger,
		Candidates:   repository.NewPostgresCandidateRepository(db),
		Jobs:         repository.NewPostgresJobRepository(db),
		Boards:       repository.NewPostgresJobBoardRepository(db),
		Applications: repository.NewPostgresApplicationRepository(db),
		Recruiters:   repository.NewPostgresRecruiterRepository(db),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
