package matching

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

type SeniorityLevel int

const (
	LevelEntry SeniorityLevel = iota
	LevelJunior
	LevelMid
	LevelSenior
	LevelLead
	LevelPrincipal
	LevelExecutive
)

var seniorityNames = map[SeniorityLevel]string{
	LevelEntry:     "entry",
	LevelJunior:    "junior",
	LevelMid:       "mid",
	LevelSenior:    "senior",
	LevelLead:      "lead",
	LevelPrincipal: "principal",
	LevelExecutive: "executive",
}

func (l SeniorityLevel) String() string {
	if name, ok := seniorityNames[l]; ok {
		return name
	}
	return "unknown"
}

func (l SeniorityLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *SeniorityLevel) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	lvl, ok := ParseSeniorityLevel(s)
	if !ok {
		return fmt.Errorf("unknown seniority level: %q", s)
	}
	*l = lvl
	return nil
}

func ParseSeniorityLevel(s string) (SeniorityLevel, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for lvl, name := range seniorityNames {
		if name == s {
			return lvl, true
		}
	}
	return LevelEntry, false
}

// LevelFromYears maps years of experience onto a seniority level. Boundaries
// are exclusive on the left: 2.0 years is already junior. Executive is never
// derived from years.
func LevelFromYears(years float64) SeniorityLevel {
	switch {
	case years < 2:
		return LevelEntry
	case years < 4:
		return LevelJunior
	case years < 7:
		return LevelMid
	case years < 10:
		return LevelSenior
	case years < 15:
		return LevelLead
	default:
		return LevelPrincipal
	}
}

type ExperienceMatchResult struct {
	CandidateYears   float64        `json:"candidate_years"`
	RequiredYears    float64        `json:"required_years"`
	CandidateLevel   SeniorityLevel `json:"candidate_level"`
	RequiredLevel    SeniorityLevel `json:"required_level"`
	MeetsRequirement bool           `json:"meets_requirement"`
	Score            int            `json:"score"`
	Explanation      string         `json:"explanation"`
}

// CalculateExperienceMatch scores candidate years against required years, or
// against an explicit target level when one is given.
func CalculateExperienceMatch(candidateYears, requiredYears float64, requiredLevel *SeniorityLevel) ExperienceMatchResult {
	if candidateYears < 0 {
		candidateYears = 0
	}
	if requiredYears < 0 {
		requiredYears = 0
	}

	candidateLevel := LevelFromYears(candidateYears)
	targetLevel := LevelFromYears(requiredYears)
	if requiredLevel != nil {
		targetLevel = *requiredLevel
	}

	diff := int(candidateLevel) - int(targetLevel)

	res := ExperienceMatchResult{
		CandidateYears: candidateYears,
		RequiredYears:  requiredYears,
		CandidateLevel: candidateLevel,
		RequiredLevel:  targetLevel,
	}

	switch {
	case diff == 0:
		res.Score = 100
		res.MeetsRequirement = true
		res.Explanation = fmt.Sprintf("Candidate is at the required %s level", targetLevel)
	case diff == 1:
		res.Score = 90
		res.MeetsRequirement = true
		res.Explanation = fmt.Sprintf("Candidate is one level above the required %s level", targetLevel)
	case diff == 2:
		res.Score = 80
		res.MeetsRequirement = true
		res.Explanation = fmt.Sprintf("Candidate is two levels above the required %s level", targetLevel)
	case diff >= 3:
		res.Score = 70
		res.MeetsRequirement = true
		res.Explanation = fmt.Sprintf("Candidate is highly overqualified for the required %s level", targetLevel)
	case diff == -1:
		res.Score = 70
		res.Explanation = fmt.Sprintf("Candidate is one level below the required %s level", targetLevel)
	case diff == -2:
		res.Score = 50
		res.Explanation = fmt.Sprintf("Candidate is two levels below the required %s level", targetLevel)
	default:
		res.Score = 30
		res.Explanation = fmt.Sprintf("Candidate is well below the required %s level", targetLevel)
	}

	return res
}

type WorkPeriod struct {
	StartDate time.Time
	EndDate   *time.Time
}

// TotalExperience sums whole months across a work history and converts to
// years rounded to one decimal. Open-ended jobs count until now; negative
// spans contribute nothing.
func TotalExperience(history []WorkPeriod) float64 {
	now := time.Now().UTC()

	months := 0
	for _, p := range history {
		if p.StartDate.IsZero() {
			continue
		}
		end := now
		if p.EndDate != nil && !p.EndDate.IsZero() {
			end = *p.EndDate
		}
		m := wholeMonthsBetween(p.StartDate, end)
		if m < 0 {
			m = 0
		}
		months += m
	}

	return math.Round(float64(months)/12*10) / 10
}

func wholeMonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	return months
}
