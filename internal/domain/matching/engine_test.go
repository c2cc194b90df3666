package matching

import (
	"strings"
	"testing"

	"talentmatch/internal/domain/taxonomy"
)

func perfectProfile() CandidateProfile {
	return CandidateProfile{
		Skills:     []string{"React", "Node.js"},
		YearsOfExp: 5,
		Education:  []Education{{Level: EducationBachelor, Field: "Computer Science"}},
		Location:   Location{City: "Austin", State: "TX", Country: "USA"},
		Title:      "Software Engineer",
	}
}

func matchingRequirements() JobRequirements {
	return JobRequirements{
		RequiredSkills: []string{"React", "Node.js"},
		RequiredYears:  5,
		EducationLevel: EducationBachelor,
		EducationField: "Computer Science",
		Locations:      []Location{{City: "Austin", State: "TX", Country: "USA"}},
		Title:          "Software Engineer",
	}
}

func TestCalculate_PerfectMatch(t *testing.T) {
	tax := taxonomy.Default()

	score := Calculate(tax, perfectProfile(), matchingRequirements(), DefaultWeights())

	if score.Overall != 100 {
		t.Fatalf("expected overall 100, got %d", score.Overall)
	}
	if len(score.SkillGaps) != 0 {
		t.Fatalf("expected no skill gaps, got %v", score.SkillGaps)
	}
	if len(score.Reasons) == 0 {
		t.Fatalf("expected reasons")
	}
}

func TestCalculate_WeightedSum(t *testing.T) {
	tax := taxonomy.Default()

	profile := perfectProfile()
	profile.Skills = []string{"React"}

	score := Calculate(tax, profile, matchingRequirements(), DefaultWeights())

	// skills 50, everything else 100: 0.4*50 + 0.6*100 = 80
	if score.Overall != 80 {
		t.Fatalf("expected overall 80, got %d", score.Overall)
	}
	if len(score.SkillGaps) != 1 || score.SkillGaps[0] != "Node.js" {
		t.Fatalf("expected Node.js gap, got %v", score.SkillGaps)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	tax := taxonomy.Default()

	a := Calculate(tax, perfectProfile(), matchingRequirements(), DefaultWeights())
	b := Calculate(tax, perfectProfile(), matchingRequirements(), DefaultWeights())

	if a.Overall != b.Overall || len(a.Reasons) != len(b.Reasons) {
		t.Fatalf("expected identical results: %+v vs %+v", a, b)
	}
}

func TestCalculate_Bounds(t *testing.T) {
	tax := taxonomy.Default()

	empty := Calculate(tax, CandidateProfile{}, JobRequirements{RequiredSkills: []string{"Go"}, RequiredYears: 10, EducationLevel: EducationDoctorate, Locations: []Location{{Country: "Japan"}}, Title: "CTO"}, DefaultWeights())
	if empty.Overall < 0 || empty.Overall > 100 {
		t.Fatalf("overall out of bounds: %d", empty.Overall)
	}
}

func TestCalculate_ReasonTemplates(t *testing.T) {
	tax := taxonomy.Default()

	profile := perfectProfile()
	profile.YearsOfExp = 12

	reqs := matchingRequirements()
	reqs.RemoteOK = true

	score := Calculate(tax, profile, reqs, DefaultWeights())

	wantSubstrings := []string{"Strong skill match", "Highly experienced", "remote", "Similar role"}
	for _, want := range wantSubstrings {
		found := false
		for _, r := range score.Reasons {
			if strings.Contains(r, want) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected a reason containing %q, got %v", want, score.Reasons)
		}
	}
}

func TestMergeWeights_NoRenormalization(t *testing.T) {
	override := 0.8
	merged := MergeWeights(DefaultWeights(), &WeightOverrides{Skills: &override})

	if merged.Skills != 0.8 {
		t.Fatalf("expected skills weight 0.8, got %v", merged.Skills)
	}
	if merged.Experience != 0.25 || merged.Education != 0.15 || merged.Location != 0.10 || merged.Title != 0.10 {
		t.Fatalf("expected untouched weights to keep defaults: %+v", merged)
	}
	if sum := merged.Sum(); sum < 1.39 || sum > 1.41 {
		t.Fatalf("expected sum 1.4 without renormalization, got %v", sum)
	}
}

func TestMergeWeights_NilKeepsDefaults(t *testing.T) {
	if got := MergeWeights(DefaultWeights(), nil); got != DefaultWeights() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}
