package ingest

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"talentmatch/internal/domain/job"
	"talentmatch/internal/domain/matching"
	"talentmatch/internal/domain/taxonomy"

	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"
)

// BoardCrawler walks an external job board, pulls posting pages, derives
// structured requirements from the posting text and upserts job rows.
type BoardCrawler struct {
	jobs   job.Repository
	tax    *taxonomy.Taxonomy
	logger *log.Logger

	workers int
	rate    int
}

func NewBoardCrawler(jobs job.Repository, tax *taxonomy.Taxonomy, workers, ratePerSecond int, logger *log.Logger) *BoardCrawler {
	if workers <= 0 {
		workers = 4
	}
	if ratePerSecond <= 0 {
		ratePerSecond = 2
	}
	return &BoardCrawler{
		jobs:    jobs,
		tax:     tax,
		logger:  logger,
		workers: workers,
		rate:    ratePerSecond,
	}
}

type posting struct {
	URL         string
	Title       string
	Description string
}

// Crawl returns the IDs of every job row it inserted or refreshed.
func (b *BoardCrawler) Crawl(ctx context.Context, board job.Board) ([]uuid.UUID, error) {
	if b == nil || b.jobs == nil {
		return nil, fmt.Errorf("nil crawler")
	}

	links, err := b.collectLinks(ctx, board)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}

	pool := NewWorkerPool(b.workers, b.workers*2)
	pool.SetRateLimit(b.rate)
	results := pool.Run(ctx)

	var mu sync.Mutex
	touched := make([]uuid.UUID, 0, len(links))

	for _, link := range links {
		link := link
		accepted := pool.Submit(ctx, func(ctx context.Context) error {
			p, err := b.fetchPosting(ctx, board, link)
			if err != nil {
				return err
			}

			id, created, err := b.jobs.UpsertExternal(ctx, b.toJob(board, p))
			if err != nil {
				return err
			}

			mu.Lock()
			touched = append(touched, id)
			mu.Unlock()

			if b.logger != nil {
				action := "refreshed"
				if created {
					action = "created"
				}
				b.logger.Printf("ingest %s job | board=%s url=%s", action, board.Name, p.URL)
			}
			return nil
		})
		if !accepted {
			break
		}
	}

	pool.Close()
	for res := range results {
		if res.Err != nil && b.logger != nil {
			b.logger.Printf("ingest item failed | board=%s err=%v", board.Name, res.Err)
		}
	}

	return touched, nil
}

func (b *BoardCrawler) collectLinks(ctx context.Context, board job.Board) ([]string, error) {
	host := hostFromBaseURL(board.BaseURL)
	c := colly.NewCollector(colly.AllowedDomains(host))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 400 * time.Millisecond, RandomDelay: 750 * time.Millisecond})

	links := make([]string, 0)
	c.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" {
			return
		}
		if !strings.Contains(href, "/job") && !strings.Contains(href, "/remote-jobs/") {
			return
		}
		if abs := e.Request.AbsoluteURL(href); abs != "" {
			links = append(links, abs)
		}
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", crawlerUserAgent)
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(board.BaseURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]string, 0, len(links))
	for _, l := range links {
		if _, ok := dedup[l]; ok {
			continue
		}
		dedup[l] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}

func (b *BoardCrawler) fetchPosting(ctx context.Context, board job.Board, link string) (posting, error) {
	host := hostFromBaseURL(board.BaseURL)
	c := colly.NewCollector(colly.AllowedDomains(host))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 450 * time.Millisecond, RandomDelay: 850 * time.Millisecond})

	out := posting{URL: link}
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", crawlerUserAgent)
	})
	c.OnHTML("title", func(e *colly.HTMLElement) {
		if out.Title == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if t := strings.TrimSpace(e.Text); t != "" {
			out.Title = t
		}
	})
	c.OnHTML("body", func(e *colly.HTMLElement) {
		out.Description = strings.TrimSpace(e.DOM.Find("body").Text())
	})
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return posting{}, ctx.Err()
	}
	if err := c.Visit(link); err != nil {
		return posting{}, err
	}
	c.Wait()
	if reqErr != nil {
		return posting{}, reqErr
	}
	if out.Title == "" {
		return posting{}, fmt.Errorf("no title at %s", link)
	}
	return out, nil
}

// toJob fills the structured fields the matchers consume: skills come from
// taxonomy extraction, years from a "N+ years" pattern, remote from a
// keyword scan.
func (b *BoardCrawler) toJob(board job.Board, p posting) job.Job {
	boardID := board.ID
	j := job.Job{
		ID:             uuid.New(),
		BoardID:        &boardID,
		ExternalURL:    p.URL,
		Title:          p.Title,
		Description:    p.Description,
		RequiredSkills: matching.ExtractSkills(b.tax, p.Description),
		RequiredYears:  extractRequiredYears(p.Description),
		RemoteOK:       looksRemote(p.Title + " " + p.Description),
	}
	return j
}

const crawlerUserAgent = "TalentMatchBot/0.1"

func looksRemote(text string) bool {
	return strings.Contains(strings.ToLower(text), "remote")
}

// extractRequiredYears finds the first "N+ years" or "N years" mention.
func extractRequiredYears(text string) float64 {
	lower := strings.ToLower(text)
	fields := strings.Fields(lower)
	for i, f := range fields {
		if !strings.HasPrefix(f, "year") {
			continue
		}
		if i == 0 {
			continue
		}
		prev := strings.TrimSuffix(fields[i-1], "+")
		if n, err := strconv.Atoi(prev); err == nil && n > 0 && n < 40 {
			return float64(n)
		}
	}
	return 0
}

func hostFromBaseURL(base string) string {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || u.Host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(u.Host); err == nil {
		return h
	}
	return u.Host
}
