package matching

import (
	"testing"
	"time"
)

func TestLevelFromYears_Boundaries(t *testing.T) {
	cases := []struct {
		years float64
		want  SeniorityLevel
	}{
		{0, LevelEntry},
		{1.99, LevelEntry},
		{2.0, LevelJunior},
		{3.99, LevelJunior},
		{4.0, LevelMid},
		{7.0, LevelSenior},
		{10.0, LevelLead},
		{15.0, LevelPrincipal},
		{40, LevelPrincipal},
	}
	for _, c := range cases {
		if got := LevelFromYears(c.years); got != c.want {
			t.Fatalf("LevelFromYears(%v) = %s, want %s", c.years, got, c.want)
		}
	}
}

func TestCalculateExperienceMatch_ScoreTable(t *testing.T) {
	cases := []struct {
		candidate float64
		required  float64
		wantScore int
		wantMeets bool
	}{
		{5, 5, 100, true},   // same level
		{8, 5, 90, true},    // one above
		{12, 5, 80, true},   // two above
		{20, 2, 70, true},   // highly overqualified
		{2, 5, 70, false},   // one below
		{2, 8, 50, false},   // two below
		{0, 12, 30, false},  // far below
	}
	for _, c := range cases {
		res := CalculateExperienceMatch(c.candidate, c.required, nil)
		if res.Score != c.wantScore {
			t.Fatalf("(%v vs %v): score %d, want %d", c.candidate, c.required, res.Score, c.wantScore)
		}
		if res.MeetsRequirement != c.wantMeets {
			t.Fatalf("(%v vs %v): meets %v, want %v", c.candidate, c.required, res.MeetsRequirement, c.wantMeets)
		}
		if res.Explanation == "" {
			t.Fatalf("(%v vs %v): empty explanation", c.candidate, c.required)
		}
	}
}

func TestCalculateExperienceMatch_ExplicitLevelOverride(t *testing.T) {
	lvl := LevelExecutive
	res := CalculateExperienceMatch(12, 5, &lvl)

	if res.RequiredLevel != LevelExecutive {
		t.Fatalf("expected executive target, got %s", res.RequiredLevel)
	}
	if res.CandidateLevel != LevelLead {
		t.Fatalf("expected lead candidate, got %s", res.CandidateLevel)
	}
	// lead(4) - executive(6) = -2
	if res.Score != 50 || res.MeetsRequirement {
		t.Fatalf("expected 50/not-met, got %d/%v", res.Score, res.MeetsRequirement)
	}
}

func TestCalculateExperienceMatch_NegativeYearsClamped(t *testing.T) {
	res := CalculateExperienceMatch(-3, -1, nil)
	if res.CandidateYears != 0 || res.RequiredYears != 0 {
		t.Fatalf("expected clamped years, got %v/%v", res.CandidateYears, res.RequiredYears)
	}
	if res.Score != 100 {
		t.Fatalf("expected entry-vs-entry 100, got %d", res.Score)
	}
}

func TestTotalExperience(t *testing.T) {
	end := time.Date(2021, 7, 15, 0, 0, 0, 0, time.UTC)
	history := []WorkPeriod{
		{StartDate: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC), EndDate: &end},
	}
	if got := TotalExperience(history); got != 1.5 {
		t.Fatalf("expected 1.5 years, got %v", got)
	}
}

func TestTotalExperience_NegativeSpanFloored(t *testing.T) {
	end := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	history := []WorkPeriod{
		{StartDate: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), EndDate: &end},
	}
	if got := TotalExperience(history); got != 0 {
		t.Fatalf("expected 0 for negative span, got %v", got)
	}
}

func TestTotalExperience_OpenEnded(t *testing.T) {
	history := []WorkPeriod{
		{StartDate: time.Now().UTC().AddDate(-2, 0, 0)},
	}
	got := TotalExperience(history)
	if got < 1.9 || got > 2.1 {
		t.Fatalf("expected roughly 2 years for open-ended job, got %v", got)
	}
}
