package matching

import "testing"

func TestCalculateTitleMatch_ExactAfterNormalization(t *testing.T) {
	res := CalculateTitleMatch("  Software Engineer!", "software engineer")
	if res.Type != TitleMatchExact || res.Score != 100 {
		t.Fatalf("expected exact/100, got %s/%d", res.Type, res.Score)
	}
}

func TestCalculateTitleMatch_SeniorVsPlain(t *testing.T) {
	res := CalculateTitleMatch("Senior Software Engineer", "Software Engineer")
	// same role, seniority distance senior(3) vs default mid(2)
	if res.Type != TitleMatchSimilar || res.Score != 85 {
		t.Fatalf("expected similar/85, got %s/%d", res.Type, res.Score)
	}
}

func TestCalculateTitleMatch_SynonymRoles(t *testing.T) {
	res := CalculateTitleMatch("Software Developer", "Software Engineer")
	if res.Type != TitleMatchSimilar || res.Score != 90 {
		t.Fatalf("expected similar/90, got %s/%d", res.Type, res.Score)
	}
}

func TestCalculateTitleMatch_LargeSeniorityGap(t *testing.T) {
	res := CalculateTitleMatch("Intern Software Developer", "Director Software Engineer")
	// same role, distance 6
	if res.Type != TitleMatchRelated || res.Score != 70 {
		t.Fatalf("expected related/70, got %s/%d", res.Type, res.Score)
	}
}

func TestCalculateTitleMatch_RelatedRoles(t *testing.T) {
	res := CalculateTitleMatch("Software Engineer", "DevOps Engineer")
	if res.Type != TitleMatchRelated || res.Score != 60 {
		t.Fatalf("expected related/60, got %s/%d", res.Type, res.Score)
	}
}

func TestCalculateTitleMatch_Different(t *testing.T) {
	res := CalculateTitleMatch("Software Engineer", "Accountant")
	if res.Type != TitleMatchDifferent || res.Score != 30 {
		t.Fatalf("expected different/30, got %s/%d", res.Type, res.Score)
	}
}

func TestCalculateTitleMatch_Deterministic(t *testing.T) {
	a := CalculateTitleMatch("Senior Backend Developer", "Lead Backend Engineer")
	b := CalculateTitleMatch("Senior Backend Developer", "Lead Backend Engineer")
	if a != b {
		t.Fatalf("expected identical results: %+v vs %+v", a, b)
	}
}

func TestSuggestTitles(t *testing.T) {
	got := SuggestTitles("Senior Software Engineer", 3)
	if len(got) == 0 || len(got) > 3 {
		t.Fatalf("expected 1..3 suggestions, got %v", got)
	}
	for _, s := range got {
		if s == "software engineer" {
			t.Fatalf("suggested the input role itself: %v", got)
		}
	}

	if got := SuggestTitles("Zookeeper", 5); len(got) != 0 {
		t.Fatalf("expected no suggestions for unknown role, got %v", got)
	}
}
