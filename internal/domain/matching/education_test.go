package matching

import "testing"

func TestCalculateEducationMatch_EmptyHistory(t *testing.T) {
	res := CalculateEducationMatch(nil, EducationBachelor, "")

	if res.Score != 0 {
		t.Fatalf("expected score 0, got %d", res.Score)
	}
	if res.CandidateLevel != EducationHighSchool {
		t.Fatalf("expected high_school floor, got %s", res.CandidateLevel)
	}
	if res.MeetsRequirement {
		t.Fatalf("expected not met")
	}
}

func TestCalculateEducationMatch_LevelDistance(t *testing.T) {
	cases := []struct {
		candidate EducationLevel
		required  EducationLevel
		wantScore int
		wantMeets bool
	}{
		{EducationDoctorate, EducationBachelor, 100, true},
		{EducationBachelor, EducationBachelor, 100, true},
		{EducationAssociate, EducationBachelor, 70, false},
		{EducationHighSchool, EducationBachelor, 40, false},
		{EducationHighSchool, EducationDoctorate, 20, false},
	}
	for _, c := range cases {
		res := CalculateEducationMatch([]Education{{Level: c.candidate}}, c.required, "")
		if res.Score != c.wantScore || res.MeetsRequirement != c.wantMeets {
			t.Fatalf("(%s vs %s): got %d/%v, want %d/%v", c.candidate, c.required, res.Score, res.MeetsRequirement, c.wantScore, c.wantMeets)
		}
	}
}

func TestCalculateEducationMatch_PicksHighestEntry(t *testing.T) {
	res := CalculateEducationMatch([]Education{
		{Level: EducationAssociate},
		{Level: EducationMaster},
		{Level: EducationBachelor},
	}, EducationMaster, "")

	if res.CandidateLevel != EducationMaster {
		t.Fatalf("expected master picked, got %s", res.CandidateLevel)
	}
	if res.Score != 100 {
		t.Fatalf("expected 100, got %d", res.Score)
	}
}

func TestCalculateEducationMatch_FieldBonus(t *testing.T) {
	res := CalculateEducationMatch(
		[]Education{{Level: EducationAssociate, Field: "Software Engineering"}},
		EducationBachelor,
		"Computer Science",
	)
	if !res.FieldMatch {
		t.Fatalf("expected field match")
	}
	// 70 + 10 bonus
	if res.Score != 80 {
		t.Fatalf("expected 80, got %d", res.Score)
	}
}

func TestCalculateEducationMatch_FieldBonusCapped(t *testing.T) {
	res := CalculateEducationMatch(
		[]Education{{Level: EducationMaster, Field: "Computer Science"}},
		EducationBachelor,
		"Computer Science",
	)
	if !res.FieldMatch || res.Score != 100 {
		t.Fatalf("expected capped 100 with field match, got %d/%v", res.Score, res.FieldMatch)
	}
}

func TestCalculateEducationMatch_UnrelatedField(t *testing.T) {
	res := CalculateEducationMatch(
		[]Education{{Level: EducationBachelor, Field: "History"}},
		EducationBachelor,
		"Computer Science",
	)
	if res.FieldMatch {
		t.Fatalf("expected no field match for history")
	}
	if res.Score != 100 {
		t.Fatalf("expected base 100, got %d", res.Score)
	}
}

func TestParseEducationLevel(t *testing.T) {
	if lvl, ok := ParseEducationLevel(" Bachelor "); !ok || lvl != EducationBachelor {
		t.Fatalf("expected bachelor, got %s ok=%v", lvl, ok)
	}
	if _, ok := ParseEducationLevel("kindergarten"); ok {
		t.Fatalf("expected parse failure")
	}
}
