package matching

import (
	"encoding/json"
	"fmt"
	"strings"
)

type EducationLevel int

const (
	EducationHighSchool EducationLevel = iota
	EducationAssociate
	EducationBachelor
	EducationMaster
	EducationDoctorate
)

var educationNames = map[EducationLevel]string{
	EducationHighSchool: "high_school",
	EducationAssociate:  "associate",
	EducationBachelor:   "bachelor",
	EducationMaster:     "master",
	EducationDoctorate:  "doctorate",
}

func (l EducationLevel) String() string {
	if name, ok := educationNames[l]; ok {
		return name
	}
	return "unknown"
}

func (l EducationLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *EducationLevel) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	lvl, ok := ParseEducationLevel(s)
	if !ok {
		return fmt.Errorf("unknown education level: %q", s)
	}
	*l = lvl
	return nil
}

func ParseEducationLevel(s string) (EducationLevel, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for lvl, name := range educationNames {
		if s == name {
			return lvl, true
		}
	}
	return EducationHighSchool, false
}

type Education struct {
	Level          EducationLevel
	Field          string
	Institution    string
	GraduationYear int
}

type EducationMatchResult struct {
	CandidateLevel   EducationLevel `json:"candidate_level"`
	RequiredLevel    EducationLevel `json:"required_level"`
	MeetsRequirement bool           `json:"meets_requirement"`
	FieldMatch       bool           `json:"field_match"`
	Score            int            `json:"score"`
	Explanation      string         `json:"explanation"`
}

// relatedFields groups fields of study that count as equivalent for the
// field-of-study bonus. Lookup is substring-based in both directions.
var relatedFields = map[string][]string{
	"computer science":       {"software engineering", "information technology", "computer engineering", "informatics"},
	"software engineering":   {"computer science", "information technology"},
	"information technology": {"computer science", "information systems"},
	"data science":           {"statistics", "mathematics", "computer science", "machine learning"},
	"electrical engineering": {"computer engineering", "electronics"},
	"business":               {"business administration", "management", "finance", "economics"},
	"marketing":              {"communications", "business", "advertising"},
	"design":                 {"graphic design", "visual design", "ux design", "ui design"},
}

// CalculateEducationMatch scores the candidate's highest education entry
// against the required level, with a capped bonus when the field of study is
// related to the required field.
func CalculateEducationMatch(education []Education, requiredLevel EducationLevel, requiredField string) EducationMatchResult {
	if len(education) == 0 {
		return EducationMatchResult{
			CandidateLevel: EducationHighSchool,
			RequiredLevel:  requiredLevel,
			Explanation:    "No education history on record",
		}
	}

	highest := education[0]
	for _, e := range education[1:] {
		if e.Level > highest.Level {
			highest = e
		}
	}

	res := EducationMatchResult{
		CandidateLevel: highest.Level,
		RequiredLevel:  requiredLevel,
	}

	diff := int(highest.Level) - int(requiredLevel)
	switch {
	case diff >= 0:
		res.Score = 100
		res.MeetsRequirement = true
		res.Explanation = fmt.Sprintf("Candidate holds a %s degree, meets the %s requirement", highest.Level, requiredLevel)
	case diff == -1:
		res.Score = 70
		res.Explanation = fmt.Sprintf("Candidate holds a %s degree, one level below the %s requirement", highest.Level, requiredLevel)
	case diff == -2:
		res.Score = 40
		res.Explanation = fmt.Sprintf("Candidate holds a %s degree, two levels below the %s requirement", highest.Level, requiredLevel)
	default:
		res.Score = 20
		res.Explanation = fmt.Sprintf("Candidate holds a %s degree, well below the %s requirement", highest.Level, requiredLevel)
	}

	if requiredField != "" && highest.Field != "" && fieldsRelated(highest.Field, requiredField) {
		res.FieldMatch = true
		res.Score += 10
		if res.Score > 100 {
			res.Score = 100
		}
		res.Explanation += fmt.Sprintf("; field of study matches %s", strings.TrimSpace(requiredField))
	}

	return res
}

func fieldsRelated(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return fieldClusterContains(a, b) || fieldClusterContains(b, a)
}

func fieldClusterContains(key, candidate string) bool {
	for cluster, members := range relatedFields {
		if !strings.Contains(key, cluster) && !strings.Contains(cluster, key) {
			continue
		}
		for _, m := range members {
			if strings.Contains(candidate, m) || strings.Contains(m, candidate) {
				return true
			}
		}
	}
	return false
}
