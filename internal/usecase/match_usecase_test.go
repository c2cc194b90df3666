package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"talentmatch/internal/domain/application"
	"talentmatch/internal/domain/candidate"
	"talentmatch/internal/domain/job"
	"talentmatch/internal/domain/matching"
	"talentmatch/internal/domain/taxonomy"

	"github.com/google/uuid"
)

type mockCandidateRepo struct {
	getByID   func(ctx context.Context, id uuid.UUID) (candidate.Candidate, error)
	listByIDs func(ctx context.Context, ids []uuid.UUID) ([]candidate.Candidate, error)
}

func (m *mockCandidateRepo) Create(context.Context, candidate.Candidate) error { return nil }
func (m *mockCandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	return m.getByID(ctx, id)
}
func (m *mockCandidateRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]candidate.Candidate, error) {
	return m.listByIDs(ctx, ids)
}

type mockJobRepo struct {
	getByID func(ctx context.Context, id uuid.UUID) (job.Job, error)
}

func (m *mockJobRepo) Create(context.Context, job.Job) error { return nil }
func (m *mockJobRepo) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	return m.getByID(ctx, id)
}
func (m *mockJobRepo) UpsertExternal(context.Context, job.Job) (uuid.UUID, bool, error) {
	return uuid.Nil, false, nil
}

type mockApplicationRepo struct {
	getByID           func(ctx context.Context, id uuid.UUID) (application.Application, error)
	listByJob         func(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
	updateMatchFields func(ctx context.Context, id uuid.UUID, fields application.MatchFields) error
}

func (m *mockApplicationRepo) Create(context.Context, application.Application) error { return nil }
func (m *mockApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	return m.getByID(ctx, id)
}
func (m *mockApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return m.listByJob(ctx, jobID)
}
func (m *mockApplicationRepo) UpdateMatchFields(ctx context.Context, id uuid.UUID, fields application.MatchFields) error {
	return m.updateMatchFields(ctx, id, fields)
}

type mockNotifier struct {
	jobID   uuid.UUID
	appID   uuid.UUID
	overall int
	calls   int
}

func (m *mockNotifier) MatchesUpdated(jobID, applicationID uuid.UUID, overall int) {
	m.jobID = jobID
	m.appID = applicationID
	m.overall = overall
	m.calls++
}

type memoryMatchCache struct {
	entries map[string][]byte
}

func newMemoryMatchCache() *memoryMatchCache {
	return &memoryMatchCache{entries: map[string][]byte{}}
}

func (m *memoryMatchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memoryMatchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = b
	return nil
}

func (m *memoryMatchCache) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func (m *memoryMatchCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}

func strongCandidate(id uuid.UUID) candidate.Candidate {
	return candidate.Candidate{
		ID:                id,
		FullName:          "Strong Candidate",
		Title:             "Software Engineer",
		YearsOfExperience: 5,
		City:              "Austin",
		State:             "TX",
		Country:           "USA",
		Skills:            []string{"React", "Node.js"},
		Education:         []matching.Education{{Level: matching.EducationBachelor, Field: "Computer Science"}},
	}
}

func reactJob(id uuid.UUID) job.Job {
	return job.Job{
		ID:             id,
		Title:          "Software Engineer",
		RequiredSkills: []string{"React", "Node.js"},
		RequiredYears:  5,
		EducationLevel: matching.EducationBachelor,
		EducationField: "Computer Science",
		Locations:      []matching.Location{{City: "Austin", State: "TX", Country: "USA"}},
	}
}

func newTestMatching(c candidate.Repository, j job.Repository, a application.Repository, n MatchNotifier) *Matching {
	return NewMatchingUsecase(taxonomy.Default(), c, j, a, nil, time.Minute, n, nil)
}

func TestCalculateMatch_JobNotFound(t *testing.T) {
	jobs := &mockJobRepo{
		getByID: func(context.Context, uuid.UUID) (job.Job, error) {
			return job.Job{}, job.ErrNotFound
		},
	}
	candidates := &mockCandidateRepo{
		getByID: func(context.Context, uuid.UUID) (candidate.Candidate, error) {
			t.Fatalf("candidate repo must not be hit when the job is missing")
			return candidate.Candidate{}, nil
		},
	}
	u := newTestMatching(candidates, jobs, &mockApplicationRepo{}, nil)

	_, err := u.CalculateMatch(context.Background(), uuid.New(), uuid.New(), nil)
	if err != ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestCalculateMatch_PerfectPair(t *testing.T) {
	candID := uuid.New()
	jobID := uuid.New()

	candidates := &mockCandidateRepo{
		getByID: func(_ context.Context, id uuid.UUID) (candidate.Candidate, error) {
			if id != candID {
				t.Fatalf("unexpected candidate id %s", id)
			}
			return strongCandidate(candID), nil
		},
	}
	jobs := &mockJobRepo{
		getByID: func(_ context.Context, id uuid.UUID) (job.Job, error) {
			return reactJob(jobID), nil
		},
	}
	u := newTestMatching(candidates, jobs, &mockApplicationRepo{}, nil)

	score, err := u.CalculateMatch(context.Background(), candID, jobID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Overall != 100 {
		t.Fatalf("expected overall 100, got %d", score.Overall)
	}
}

func TestCalculateMatch_SkillExtractionFallback(t *testing.T) {
	candID := uuid.New()
	jobID := uuid.New()

	j := reactJob(jobID)
	j.RequiredSkills = nil
	j.Description = "We are looking for engineers with React and Node.js experience."

	candidates := &mockCandidateRepo{
		getByID: func(context.Context, uuid.UUID) (candidate.Candidate, error) {
			return strongCandidate(candID), nil
		},
	}
	jobs := &mockJobRepo{
		getByID: func(context.Context, uuid.UUID) (job.Job, error) { return j, nil },
	}
	u := newTestMatching(candidates, jobs, &mockApplicationRepo{}, nil)

	score, err := u.CalculateMatch(context.Background(), candID, jobID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Breakdown.Skills.RequiredCount == 0 {
		t.Fatalf("expected skills extracted from the description")
	}
	if score.Breakdown.Skills.Score != 100 {
		t.Fatalf("expected full skill score, got %d", score.Breakdown.Skills.Score)
	}
}

func TestCalculateMatchesForJob_RankingAndTieBreak(t *testing.T) {
	jobID := uuid.New()

	// Fixed IDs so the tie-break order is known up front.
	weakA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	weakB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	strong := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	weak := func(id uuid.UUID) candidate.Candidate {
		c := strongCandidate(id)
		c.Skills = []string{"React"}
		return c
	}

	jobs := &mockJobRepo{
		getByID: func(context.Context, uuid.UUID) (job.Job, error) { return reactJob(jobID), nil },
	}
	apps := &mockApplicationRepo{
		listByJob: func(context.Context, uuid.UUID) ([]application.Application, error) {
			return []application.Application{
				{ID: uuid.New(), JobID: jobID, CandidateID: weakB},
				{ID: uuid.New(), JobID: jobID, CandidateID: strong},
				{ID: uuid.New(), JobID: jobID, CandidateID: weakA},
			}, nil
		},
	}
	candidates := &mockCandidateRepo{
		listByIDs: func(_ context.Context, ids []uuid.UUID) ([]candidate.Candidate, error) {
			return []candidate.Candidate{weak(weakB), strongCandidate(strong), weak(weakA)}, nil
		},
	}
	u := newTestMatching(candidates, jobs, apps, nil)

	ranked, err := u.CalculateMatchesForJob(context.Background(), jobID, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked candidates, got %d", len(ranked))
	}
	if ranked[0].CandidateID != strong {
		t.Fatalf("expected the strong candidate first, got %s", ranked[0].CandidateID)
	}
	if ranked[1].CandidateID != weakA || ranked[2].CandidateID != weakB {
		t.Fatalf("expected equal scores ordered by candidate id, got %s then %s", ranked[1].CandidateID, ranked[2].CandidateID)
	}
	if ranked[1].Score.Overall != ranked[2].Score.Overall {
		t.Fatalf("tie-break test requires equal scores, got %d and %d", ranked[1].Score.Overall, ranked[2].Score.Overall)
	}
}

func TestCalculateMatchesForJob_CachesFullRanking(t *testing.T) {
	jobID := uuid.New()
	candID := uuid.New()

	jobCalls := 0
	jobs := &mockJobRepo{
		getByID: func(context.Context, uuid.UUID) (job.Job, error) {
			jobCalls++
			return reactJob(jobID), nil
		},
	}
	apps := &mockApplicationRepo{
		listByJob: func(context.Context, uuid.UUID) ([]application.Application, error) {
			return []application.Application{{ID: uuid.New(), JobID: jobID, CandidateID: candID}}, nil
		},
	}
	candidates := &mockCandidateRepo{
		listByIDs: func(context.Context, []uuid.UUID) ([]candidate.Candidate, error) {
			return []candidate.Candidate{strongCandidate(candID)}, nil
		},
	}
	cache := newMemoryMatchCache()
	u := NewMatchingUsecase(taxonomy.Default(), candidates, jobs, apps, cache, time.Minute, nil, nil)

	first, err := u.CalculateMatchesForJob(context.Background(), jobID, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := u.CalculateMatchesForJob(context.Background(), jobID, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobCalls != 1 {
		t.Fatalf("expected the second ranking to come from cache, repositories hit %d times", jobCalls)
	}
	if len(second) != 1 || second[0].CandidateID != first[0].CandidateID || second[0].Score.Overall != first[0].Score.Overall {
		t.Fatalf("expected the cached ranking to round-trip, got %+v", second)
	}

	// An explicit candidate list is a one-off query and bypasses the cache.
	if _, err := u.CalculateMatchesForJob(context.Background(), jobID, []uuid.UUID{candID}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobCalls != 2 {
		t.Fatalf("expected an explicit candidate list to bypass the cache, repositories hit %d times", jobCalls)
	}
}

func TestRefreshApplicationScore_InvalidatesCachedRankings(t *testing.T) {
	jobID := uuid.New()
	candID := uuid.New()
	appID := uuid.New()

	jobs := &mockJobRepo{
		getByID: func(context.Context, uuid.UUID) (job.Job, error) { return reactJob(jobID), nil },
	}
	apps := &mockApplicationRepo{
		listByJob: func(context.Context, uuid.UUID) ([]application.Application, error) {
			return []application.Application{{ID: appID, JobID: jobID, CandidateID: candID}}, nil
		},
		getByID: func(context.Context, uuid.UUID) (application.Application, error) {
			return application.Application{ID: appID, JobID: jobID, CandidateID: candID, Status: "applied"}, nil
		},
		updateMatchFields: func(context.Context, uuid.UUID, application.MatchFields) error { return nil },
	}
	candidates := &mockCandidateRepo{
		getByID: func(context.Context, uuid.UUID) (candidate.Candidate, error) {
			return strongCandidate(candID), nil
		},
		listByIDs: func(context.Context, []uuid.UUID) ([]candidate.Candidate, error) {
			return []candidate.Candidate{strongCandidate(candID)}, nil
		},
	}
	cache := newMemoryMatchCache()
	u := NewMatchingUsecase(taxonomy.Default(), candidates, jobs, apps, cache, time.Minute, nil, nil)

	if _, err := u.CalculateMatchesForJob(context.Background(), jobID, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache.entries) == 0 {
		t.Fatalf("expected the ranking to be cached before the refresh")
	}

	if _, err := u.RefreshApplicationScore(context.Background(), appID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k := range cache.entries {
		if strings.HasPrefix(k, "match:job:") {
			t.Fatalf("expected cached rankings to be invalidated, %s survived", k)
		}
	}
}

func TestCalculateMatchesForJob_NoApplicants(t *testing.T) {
	jobs := &mockJobRepo{
		getByID: func(context.Context, uuid.UUID) (job.Job, error) { return reactJob(uuid.New()), nil },
	}
	apps := &mockApplicationRepo{
		listByJob: func(context.Context, uuid.UUID) ([]application.Application, error) { return nil, nil },
	}
	u := newTestMatching(&mockCandidateRepo{}, jobs, apps, nil)

	ranked, err := u.CalculateMatchesForJob(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("expected empty result, got %d", len(ranked))
	}
}

func TestRefreshApplicationScore_PersistsAndNotifies(t *testing.T) {
	appID := uuid.New()
	jobID := uuid.New()
	candID := uuid.New()

	var saved *application.MatchFields
	apps := &mockApplicationRepo{
		getByID: func(_ context.Context, id uuid.UUID) (application.Application, error) {
			return application.Application{ID: appID, JobID: jobID, CandidateID: candID, Status: "applied"}, nil
		},
		updateMatchFields: func(_ context.Context, id uuid.UUID, fields application.MatchFields) error {
			if id != appID {
				t.Fatalf("unexpected application id %s", id)
			}
			saved = &fields
			return nil
		},
	}
	jobs := &mockJobRepo{
		getByID: func(context.Context, uuid.UUID) (job.Job, error) { return reactJob(jobID), nil },
	}
	candidates := &mockCandidateRepo{
		getByID: func(context.Context, uuid.UUID) (candidate.Candidate, error) {
			return strongCandidate(candID), nil
		},
	}
	notifier := &mockNotifier{}
	u := newTestMatching(candidates, jobs, apps, notifier)

	got, err := u.RefreshApplicationScore(context.Background(), appID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatalf("expected match fields to be persisted")
	}
	if saved.MatchScore != 100 {
		t.Fatalf("expected persisted score 100, got %d", saved.MatchScore)
	}
	if saved.LastMatchCalculated.IsZero() {
		t.Fatalf("expected last_match_calculated to be set")
	}
	if saved.MatchBreakdown != (matching.BreakdownScores{Skills: 100, Experience: 100, Education: 100, Location: 100, Title: 100}) {
		t.Fatalf("expected per-category scores of 100, got %+v", saved.MatchBreakdown)
	}

	// The patch lands in JSONB custom fields, so each breakdown entry has
	// to serialize as a plain integer.
	raw, err := json.Marshal(saved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var patch map[string]any
	if err := json.Unmarshal(raw, &patch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	breakdown, ok := patch["match_breakdown"].(map[string]any)
	if !ok {
		t.Fatalf("expected match_breakdown to be an object, got %T", patch["match_breakdown"])
	}
	for _, category := range []string{"skills", "experience", "education", "location", "title"} {
		if _, ok := breakdown[category].(float64); !ok {
			t.Fatalf("expected %s to serialize as a number, got %T", category, breakdown[category])
		}
	}
	if got.Match == nil || got.Match.MatchScore != saved.MatchScore {
		t.Fatalf("expected returned application to carry the fresh fields")
	}

	if notifier.calls != 1 || notifier.jobID != jobID || notifier.appID != appID || notifier.overall != 100 {
		t.Fatalf("expected one notification for the rescored application, got %+v", notifier)
	}
}

func TestRefreshApplicationScore_NotFound(t *testing.T) {
	apps := &mockApplicationRepo{
		getByID: func(context.Context, uuid.UUID) (application.Application, error) {
			return application.Application{}, application.ErrNotFound
		},
	}
	u := newTestMatching(&mockCandidateRepo{}, &mockJobRepo{}, apps, nil)

	_, err := u.RefreshApplicationScore(context.Background(), uuid.New())
	if err != ErrApplicationNotFound {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}
