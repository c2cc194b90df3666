package matching

import (
	"strings"
	"unicode"
)

type TitleMatchType string

const (
	TitleMatchExact     TitleMatchType = "exact"
	TitleMatchSimilar   TitleMatchType = "similar"
	TitleMatchRelated   TitleMatchType = "related"
	TitleMatchDifferent TitleMatchType = "different"
)

type TitleMatchResult struct {
	CandidateTitle string         `json:"candidate_title"`
	JobTitle       string         `json:"job_title"`
	Type           TitleMatchType `json:"type"`
	Score          int            `json:"score"`
	Explanation    string         `json:"explanation"`
}

const defaultSeniorityWeight = 2

// seniorityKeywords maps title keywords to a seniority weight. Multi-word
// keywords are stripped before single-word ones.
var seniorityKeywords = []struct {
	Keyword string
	Weight  int
}{
	{"vice president", 7},
	{"intern", 0},
	{"graduate", 0},
	{"junior", 1},
	{"associate", 1},
	{"mid", 2},
	{"senior", 3},
	{"staff", 4},
	{"lead", 4},
	{"principal", 5},
	{"manager", 5},
	{"head", 6},
	{"director", 6},
	{"vp", 7},
	{"cto", 8},
	{"ceo", 8},
	{"chief", 8},
}

var roleSynonyms = [][]string{
	{"software engineer", "software developer", "programmer", "swe", "application developer"},
	{"frontend engineer", "frontend developer", "front end developer", "ui developer", "web developer"},
	{"backend engineer", "backend developer", "back end developer", "server developer"},
	{"fullstack engineer", "fullstack developer", "full stack developer", "full stack engineer"},
	{"data scientist", "machine learning engineer", "ml engineer"},
	{"data engineer", "data platform engineer", "etl developer"},
	{"devops engineer", "site reliability engineer", "sre", "platform engineer", "infrastructure engineer"},
	{"product manager", "product owner"},
	{"qa engineer", "test engineer", "quality assurance engineer", "sdet"},
	{"designer", "ux designer", "ui designer", "product designer", "graphic designer"},
	{"recruiter", "talent acquisition specialist", "sourcer"},
}

var relatedRoles = map[string][]string{
	"software engineer": {"devops engineer", "data engineer", "qa engineer", "backend engineer", "frontend engineer"},
	"backend engineer":  {"software engineer", "devops engineer", "data engineer"},
	"frontend engineer": {"software engineer", "designer", "fullstack engineer"},
	"data scientist":    {"data engineer", "software engineer"},
	"data engineer":     {"data scientist", "backend engineer"},
	"devops engineer":   {"software engineer", "backend engineer"},
	"qa engineer":       {"software engineer"},
	"product manager":   {"designer", "software engineer"},
	"designer":          {"frontend engineer", "product manager"},
}

// CalculateTitleMatch compares job titles by normalized role and seniority
// distance.
func CalculateTitleMatch(candidateTitle, jobTitle string) TitleMatchResult {
	res := TitleMatchResult{CandidateTitle: candidateTitle, JobTitle: jobTitle}

	candNorm := normalizeTitle(candidateTitle)
	jobNorm := normalizeTitle(jobTitle)

	if candNorm != "" && candNorm == jobNorm {
		res.Type = TitleMatchExact
		res.Score = 100
		res.Explanation = "Titles match exactly"
		return res
	}

	candRole, candSeniority := splitTitle(candNorm)
	jobRole, jobSeniority := splitTitle(jobNorm)

	dist := candSeniority - jobSeniority
	if dist < 0 {
		dist = -dist
	}

	if rolesAreSynonyms(candRole, jobRole) {
		switch {
		case dist == 0:
			res.Score = 90
		case dist == 1:
			res.Score = 85
		case dist == 2:
			res.Score = 75
		default:
			res.Score = 70
		}
		res.Type = TitleMatchSimilar
		if dist > 2 {
			res.Type = TitleMatchRelated
		}
		res.Explanation = "Same role at a different seniority"
		return res
	}

	if rolesAreRelated(candRole, jobRole) {
		res.Type = TitleMatchRelated
		res.Score = 60
		res.Explanation = "Related role experience"
		return res
	}

	res.Type = TitleMatchDifferent
	res.Score = 30
	res.Explanation = "Different role"
	return res
}

// SuggestTitles lists synonym titles for a role, excluding the input itself.
func SuggestTitles(title string, limit int) []string {
	if limit <= 0 {
		limit = 5
	}
	role, _ := splitTitle(normalizeTitle(title))
	if role == "" {
		return nil
	}

	out := make([]string, 0, limit)
	for _, cluster := range roleSynonyms {
		if !clusterContains(cluster, role) {
			continue
		}
		for _, member := range cluster {
			if member == role || containsEither(member, role) {
				continue
			}
			out = append(out, member)
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}

// normalizeTitle lowercases, trims and strips everything that is not a
// letter, digit or space, then collapses whitespace.
func normalizeTitle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// splitTitle strips seniority keywords from a normalized title and returns
// the remaining role plus the highest matched seniority weight.
func splitTitle(normalized string) (role string, seniority int) {
	seniority = defaultSeniorityWeight
	found := false

	role = normalized
	for _, kw := range seniorityKeywords {
		stripped := removeWord(role, kw.Keyword)
		if stripped == role {
			continue
		}
		role = stripped
		if !found || kw.Weight > seniority {
			seniority = kw.Weight
		}
		found = true
	}
	return strings.Join(strings.Fields(role), " "), seniority
}

func removeWord(s, word string) string {
	fields := strings.Fields(s)
	wordFields := strings.Fields(word)
	if len(wordFields) == 0 || len(fields) < len(wordFields) {
		return s
	}

	out := make([]string, 0, len(fields))
	for i := 0; i < len(fields); {
		if i+len(wordFields) <= len(fields) && equalFields(fields[i:i+len(wordFields)], wordFields) {
			i += len(wordFields)
			continue
		}
		out = append(out, fields[i])
		i++
	}
	return strings.Join(out, " ")
}

func equalFields(a, b []string) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func rolesAreSynonyms(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	for _, cluster := range roleSynonyms {
		if clusterContains(cluster, a) && clusterContains(cluster, b) {
			return true
		}
	}
	return false
}

func rolesAreRelated(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return relatedRoleLookup(a, b) || relatedRoleLookup(b, a)
}

func relatedRoleLookup(from, to string) bool {
	for key, members := range relatedRoles {
		if !containsEither(key, from) {
			continue
		}
		for _, m := range members {
			if containsEither(m, to) {
				return true
			}
		}
	}
	return false
}

func clusterContains(cluster []string, role string) bool {
	for _, member := range cluster {
		if containsEither(member, role) {
			return true
		}
	}
	return false
}

func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
