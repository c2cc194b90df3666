package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"talentmatch/internal/app"
	"talentmatch/internal/config"
	"talentmatch/internal/domain/job"
	"talentmatch/internal/domain/taxonomy"
	"talentmatch/internal/ingest"
	"talentmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	boardsFlag := flag.String("boards", "", "comma-separated board names (default: enabled boards)")
	timeout := flag.Duration("timeout", 15*time.Minute, "overall crawl deadline")
	noRescore := flag.Bool("no-rescore", false, "skip rescoring applications on touched jobs")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	container, err := app.NewContainer(cfg, logger)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = container.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	boards, err := selectBoards(ctx, container.Boards, *boardsFlag, cfg.Ingest.Boards)
	if err != nil {
		log.Fatalf("failed to resolve boards: %v", err)
	}
	if len(boards) == 0 {
		log.Fatalf("no boards to crawl")
	}

	tax := taxonomy.Default()
	crawler := ingest.NewBoardCrawler(container.Jobs, tax, cfg.Ingest.Workers, cfg.Ingest.RatePerSecond, logger)

	touched := make([]uuid.UUID, 0)
	for _, b := range boards {
		ids, err := crawler.Crawl(ctx, b)
		if err != nil {
			logger.Printf("ingest board failed | board=%s err=%v", b.Name, err)
			continue
		}
		logger.Printf("ingest board done | board=%s jobs=%d", b.Name, len(ids))
		touched = append(touched, ids...)
	}

	if *noRescore || len(touched) == 0 {
		return
	}

	matcher := usecase.NewMatchingUsecase(
		tax,
		container.Candidates,
		container.Jobs,
		container.Applications,
		container.Cache,
		cfg.Redis.MatchCacheTTL,
		nil,
		logger,
	)
	rescorer := ingest.NewRescorer(container.Applications, matcher, cfg.Ingest.Workers, logger)

	ok, err := rescorer.RescoreJobs(ctx, dedupe(touched))
	if err != nil {
		log.Fatalf("rescore failed: %v", err)
	}
	logger.Printf("rescore done | applications=%d", ok)
}

// selectBoards resolves the crawl set: an explicit -boards flag wins,
// then the INGEST_BOARDS env filter, then every enabled board.
func selectBoards(ctx context.Context, repo job.BoardRepository, flagCSV string, envNames []string) ([]job.Board, error) {
	names := envNames
	if s := strings.TrimSpace(flagCSV); s != "" {
		names = nil
		for _, n := range strings.Split(s, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}

	if len(names) == 0 {
		return repo.ListEnabled(ctx)
	}

	boards := make([]job.Board, 0, len(names))
	for _, name := range names {
		b, err := repo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
