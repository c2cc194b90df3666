package matching

import (
	"fmt"
	"math"

	"talentmatch/internal/domain/taxonomy"
)

type Weights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Location   float64 `json:"location"`
	Title      float64 `json:"title"`
}

func DefaultWeights() Weights {
	return Weights{
		Skills:     0.40,
		Experience: 0.25,
		Education:  0.15,
		Location:   0.10,
		Title:      0.10,
	}
}

func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Location + w.Title
}

// WeightOverrides replaces individual weights; nil fields keep the defaults.
// Merged weights are used as given, they are never renormalized.
type WeightOverrides struct {
	Skills     *float64
	Experience *float64
	Education  *float64
	Location   *float64
	Title      *float64
}

func MergeWeights(base Weights, o *WeightOverrides) Weights {
	if o == nil {
		return base
	}
	if o.Skills != nil {
		base.Skills = *o.Skills
	}
	if o.Experience != nil {
		base.Experience = *o.Experience
	}
	if o.Education != nil {
		base.Education = *o.Education
	}
	if o.Location != nil {
		base.Location = *o.Location
	}
	if o.Title != nil {
		base.Title = *o.Title
	}
	return base
}

type CandidateProfile struct {
	Skills      []string
	YearsOfExp  float64
	WorkHistory []WorkPeriod
	Education   []Education
	Location    Location
	Title       string
}

// EffectiveYears prefers the explicit year count and falls back to summing
// the work history.
func (p CandidateProfile) EffectiveYears() float64 {
	if p.YearsOfExp > 0 {
		return p.YearsOfExp
	}
	if len(p.WorkHistory) > 0 {
		return TotalExperience(p.WorkHistory)
	}
	return 0
}

type JobRequirements struct {
	RequiredSkills  []string
	PreferredSkills []string
	RequiredYears   float64
	RequiredLevel   *SeniorityLevel
	EducationLevel  EducationLevel
	EducationField  string
	Locations       []Location
	RemoteOK        bool
	Title           string
}

type Breakdown struct {
	Skills     SkillMatchResult      `json:"skills"`
	Experience ExperienceMatchResult `json:"experience"`
	Education  EducationMatchResult  `json:"education"`
	Location   LocationMatchResult   `json:"location"`
	Title      TitleMatchResult      `json:"title"`
}

// BreakdownScores is the compact per-category view of a Breakdown, one
// integer per matcher. It is the shape stored on applications, where the
// full sub-results would bloat every row.
type BreakdownScores struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Location   int `json:"location"`
	Title      int `json:"title"`
}

func (b Breakdown) Scores() BreakdownScores {
	return BreakdownScores{
		Skills:     b.Skills.Score,
		Experience: b.Experience.Score,
		Education:  b.Education.Score,
		Location:   b.Location.Score,
		Title:      b.Title.Score,
	}
}

type MatchScore struct {
	Overall   int       `json:"overall"`
	Breakdown Breakdown `json:"breakdown"`
	SkillGaps []string  `json:"skill_gaps,omitempty"`
	Reasons   []string  `json:"reasons,omitempty"`
	Weights   Weights   `json:"weights"`
}

// Calculate runs the five matchers and combines them into one weighted
// score. With weights summing to 1.0 the overall lands in [0,100]; callers
// overriding weights own keeping the sum sensible.
func Calculate(tax *taxonomy.Taxonomy, profile CandidateProfile, reqs JobRequirements, weights Weights) MatchScore {
	b := Breakdown{
		Skills:     CalculateSkillMatch(tax, profile.Skills, reqs.RequiredSkills, reqs.PreferredSkills),
		Experience: CalculateExperienceMatch(profile.EffectiveYears(), reqs.RequiredYears, reqs.RequiredLevel),
		Education:  CalculateEducationMatch(profile.Education, reqs.EducationLevel, reqs.EducationField),
		Location:   CalculateLocationMatch(profile.Location, reqs.Locations, reqs.RemoteOK),
		Title:      CalculateTitleMatch(profile.Title, reqs.Title),
	}

	overall := weights.Skills*float64(b.Skills.Score) +
		weights.Experience*float64(b.Experience.Score) +
		weights.Education*float64(b.Education.Score) +
		weights.Location*float64(b.Location.Score) +
		weights.Title*float64(b.Title.Score)

	return MatchScore{
		Overall:   int(math.Round(overall)),
		Breakdown: b,
		SkillGaps: b.Skills.MissingRequired,
		Reasons:   buildReasons(b),
		Weights:   weights,
	}
}

// buildReasons renders fixed sentence templates off each sub-result, in
// breakdown order.
func buildReasons(b Breakdown) []string {
	reasons := make([]string, 0, 6)

	switch {
	case b.Skills.Score >= 80:
		reasons = append(reasons, fmt.Sprintf("Strong skill match with %d matching skills", len(b.Skills.Matches)))
	case b.Skills.Score >= 50:
		reasons = append(reasons, fmt.Sprintf("Moderate skill match with %d matching skills", len(b.Skills.Matches)))
	case b.Skills.RequiredCount > 0:
		reasons = append(reasons, fmt.Sprintf("Missing %d required skills", len(b.Skills.MissingRequired)))
	}

	switch {
	case b.Experience.MeetsRequirement && b.Experience.RequiredYears > 0 && b.Experience.CandidateYears > 1.5*b.Experience.RequiredYears:
		reasons = append(reasons, fmt.Sprintf("Highly experienced with %.1f years against %.1f required", b.Experience.CandidateYears, b.Experience.RequiredYears))
	case b.Experience.MeetsRequirement:
		reasons = append(reasons, "Meets the experience requirement")
	default:
		reasons = append(reasons, "Below the required experience level")
	}

	if b.Education.MeetsRequirement {
		if b.Education.FieldMatch {
			reasons = append(reasons, "Education level and field of study match the requirement")
		} else {
			reasons = append(reasons, "Education level meets the requirement")
		}
	}

	switch b.Location.Type {
	case LocationMatchRemote:
		reasons = append(reasons, "Open to remote work")
	case LocationMatchExact:
		reasons = append(reasons, "Located in the job's city")
	case LocationMatchNone:
		reasons = append(reasons, "Location does not match; relocation may be needed")
	}

	switch b.Title.Type {
	case TitleMatchExact, TitleMatchSimilar:
		reasons = append(reasons, "Similar role experience")
	}

	return reasons
}
