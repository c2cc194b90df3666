package matching

import (
	"testing"

	"talentmatch/internal/domain/taxonomy"
)

func TestCalculateSkillMatch_ExactSynonymRelatedMissing(t *testing.T) {
	tax := taxonomy.Default()

	res := CalculateSkillMatch(tax, []string{"Golang", "Kubernetes"}, []string{"Go", "Docker", "Elasticsearch"}, nil)

	if len(res.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(res.Matches))
	}
	if res.Matches[0].Type != SkillMatchSynonym || res.Matches[0].Score != 90 {
		t.Fatalf("Go via Golang: expected synonym/90, got %s/%d", res.Matches[0].Type, res.Matches[0].Score)
	}
	if res.Matches[1].Type != SkillMatchRelated || res.Matches[1].Score != 70 {
		t.Fatalf("Docker via Kubernetes: expected related/70, got %s/%d", res.Matches[1].Type, res.Matches[1].Score)
	}
	if len(res.MissingRequired) != 1 || res.MissingRequired[0] != "Elasticsearch" {
		t.Fatalf("expected Elasticsearch missing, got %v", res.MissingRequired)
	}
	// 90+70 of 300
	if res.Score != 53 {
		t.Fatalf("expected score 53, got %d", res.Score)
	}
}

func TestCalculateSkillMatch_ReactNodePreferredTypeScript(t *testing.T) {
	tax := taxonomy.Default()

	res := CalculateSkillMatch(tax,
		[]string{"JavaScript", "React"},
		[]string{"React", "Node.js"},
		[]string{"TypeScript"},
	)

	if len(res.Matches) != 1 || res.Matches[0].Type != SkillMatchExact {
		t.Fatalf("expected one exact match for React, got %+v", res.Matches)
	}
	if len(res.MissingRequired) != 1 || res.MissingRequired[0] != "Node.js" {
		t.Fatalf("expected Node.js missing, got %v", res.MissingRequired)
	}
	if len(res.MatchedPreferred) != 1 || res.MatchedPreferred[0] != "TypeScript" {
		t.Fatalf("expected TypeScript matched preferred, got %v", res.MatchedPreferred)
	}
	// 100 + 10 of 210
	if res.Score != 52 {
		t.Fatalf("expected score 52, got %d", res.Score)
	}
}

func TestCalculateSkillMatch_Monotonic(t *testing.T) {
	tax := taxonomy.Default()

	required := []string{"React", "Node.js"}
	before := CalculateSkillMatch(tax, []string{"React"}, required, nil)
	after := CalculateSkillMatch(tax, []string{"React", "Node.js"}, required, nil)

	if after.Score <= before.Score {
		t.Fatalf("expected strictly higher score after adding missing skill: before=%d after=%d", before.Score, after.Score)
	}
}

func TestCalculateSkillMatch_EmptyInputs(t *testing.T) {
	tax := taxonomy.Default()

	res := CalculateSkillMatch(tax, nil, nil, nil)
	if res.Score != 0 {
		t.Fatalf("expected 0 on empty denominator, got %d", res.Score)
	}

	res = CalculateSkillMatch(tax, nil, []string{"Go"}, nil)
	if res.Score != 0 || len(res.MissingRequired) != 1 {
		t.Fatalf("expected all-missing result, got score=%d missing=%v", res.Score, res.MissingRequired)
	}
}

func TestCalculateSkillMatch_Bounds(t *testing.T) {
	tax := taxonomy.Default()

	res := CalculateSkillMatch(tax,
		[]string{"Go", "Docker", "Kubernetes", "PostgreSQL"},
		[]string{"Go", "Docker"},
		[]string{"Kubernetes", "PostgreSQL"},
	)
	if res.Score < 0 || res.Score > 100 {
		t.Fatalf("score out of bounds: %d", res.Score)
	}
	if res.Score != 100 {
		t.Fatalf("expected full score, got %d", res.Score)
	}
}

func TestExtractSkills_NGrams(t *testing.T) {
	tax := taxonomy.Default()

	got := ExtractSkills(tax, "Looking for node js plus ruby on rails and react experience")

	want := map[string]bool{"Node.js": true, "Ruby": true, "Rails": true, "React": true}
	for _, s := range got {
		delete(want, s)
	}
	if len(want) != 0 {
		t.Fatalf("missing extracted skills %v in %v", want, got)
	}

	seen := map[string]int{}
	for _, s := range got {
		seen[s]++
		if seen[s] > 1 {
			t.Fatalf("duplicate canonical %q in %v", s, got)
		}
	}
}

func TestNormalizeSkills_KeepsUnknown(t *testing.T) {
	tax := taxonomy.Default()

	got := NormalizeSkills(tax, []string{"golang", "Basket Weaving", "postgres"})
	if got[0] != "Go" || got[1] != "Basket Weaving" || got[2] != "PostgreSQL" {
		t.Fatalf("unexpected normalization: %v", got)
	}
}

func TestSuggestSkills(t *testing.T) {
	tax := taxonomy.Default()

	got := SuggestSkills(tax, []string{"JavaScript", "TypeScript"}, 5)
	if len(got) == 0 || len(got) > 5 {
		t.Fatalf("expected 1..5 suggestions, got %v", got)
	}
	for _, s := range got {
		if s == "JavaScript" || s == "TypeScript" {
			t.Fatalf("suggested an already-held skill: %v", got)
		}
	}
	if got[0] != "Node.js" {
		t.Fatalf("expected insertion order starting with Node.js, got %v", got)
	}

	if out := SuggestSkills(tax, []string{"JavaScript"}, 2); len(out) != 2 {
		t.Fatalf("expected limit to truncate, got %v", out)
	}
}
