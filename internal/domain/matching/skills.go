package matching

import (
	"math"
	"strings"

	"talentmatch/internal/domain/taxonomy"
)

type SkillMatchType string

const (
	SkillMatchExact   SkillMatchType = "exact"
	SkillMatchSynonym SkillMatchType = "synonym"
	SkillMatchRelated SkillMatchType = "related"
	SkillMatchNone    SkillMatchType = "none"
)

const (
	exactSkillPoints   = 100
	synonymSkillPoints = 90
	relatedSkillPoints = 70
	preferredPoints    = 10
)

type SkillMatch struct {
	CandidateSkill string         `json:"candidate_skill"`
	RequiredSkill  string         `json:"required_skill"`
	Type           SkillMatchType `json:"type"`
	Score          int            `json:"score"`
}

type SkillMatchResult struct {
	Score            int          `json:"score"`
	Matches          []SkillMatch `json:"matches,omitempty"`
	MissingRequired  []string     `json:"missing_required,omitempty"`
	MatchedPreferred []string     `json:"matched_preferred,omitempty"`
	RequiredCount    int          `json:"required_count"`
	PreferredCount   int          `json:"preferred_count"`
}

// CalculateSkillMatch scores a candidate skill set against required and
// preferred skills. Rules per required skill, first match wins: exact string
// equality, same canonical, related edge, else missing. Preferred skills add
// a flat bonus on any tier.
func CalculateSkillMatch(tax *taxonomy.Taxonomy, candidateSkills, requiredSkills, preferredSkills []string) SkillMatchResult {
	res := SkillMatchResult{
		Matches:          make([]SkillMatch, 0, len(requiredSkills)),
		MissingRequired:  make([]string, 0),
		MatchedPreferred: make([]string, 0),
		RequiredCount:    len(requiredSkills),
		PreferredCount:   len(preferredSkills),
	}

	earned := 0
	for _, req := range requiredSkills {
		m := matchOneSkill(tax, candidateSkills, req)
		if m.Type == SkillMatchNone {
			res.MissingRequired = append(res.MissingRequired, req)
			continue
		}
		earned += m.Score
		res.Matches = append(res.Matches, m)
	}

	for _, pref := range preferredSkills {
		m := matchOneSkill(tax, candidateSkills, pref)
		if m.Type == SkillMatchNone {
			continue
		}
		earned += preferredPoints
		res.MatchedPreferred = append(res.MatchedPreferred, pref)
	}

	maxPoints := exactSkillPoints*len(requiredSkills) + preferredPoints*len(preferredSkills)
	if maxPoints > 0 {
		res.Score = int(math.Round(100 * float64(earned) / float64(maxPoints)))
	}
	return res
}

// matchOneSkill finds the best candidate skill for one target skill. The
// related tier follows the target's outgoing edges: the job-side skill must
// name the candidate skill as related, not the other way around.
func matchOneSkill(tax *taxonomy.Taxonomy, candidateSkills []string, target string) SkillMatch {
	targetCanonical, targetKnown := tax.FindCanonical(target)

	for _, cand := range candidateSkills {
		if strings.EqualFold(strings.TrimSpace(cand), strings.TrimSpace(target)) {
			return SkillMatch{CandidateSkill: cand, RequiredSkill: target, Type: SkillMatchExact, Score: exactSkillPoints}
		}
	}

	if !targetKnown {
		return SkillMatch{RequiredSkill: target, Type: SkillMatchNone}
	}

	for _, cand := range candidateSkills {
		candCanonical, ok := tax.FindCanonical(cand)
		if !ok {
			continue
		}
		if candCanonical == targetCanonical {
			return SkillMatch{CandidateSkill: cand, RequiredSkill: target, Type: SkillMatchSynonym, Score: synonymSkillPoints}
		}
	}

	for _, cand := range candidateSkills {
		candCanonical, ok := tax.FindCanonical(cand)
		if !ok {
			continue
		}
		if candCanonical == targetCanonical {
			continue
		}
		if tax.IsRelated(targetCanonical, candCanonical) {
			return SkillMatch{CandidateSkill: cand, RequiredSkill: target, Type: SkillMatchRelated, Score: relatedSkillPoints}
		}
	}

	return SkillMatch{RequiredSkill: target, Type: SkillMatchNone}
}

// ExtractSkills scans whitespace-tokenized text with 1, 2 and 3 word windows
// and returns every canonical skill that resolves. A unigram hit does not
// suppress an overlapping bigram hit; duplicates collapse to one entry.
func ExtractSkills(tax *taxonomy.Taxonomy, text string) []string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	seen := map[string]struct{}{}
	out := make([]string, 0)
	for n := 1; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			phrase := strings.Join(tokens[i:i+n], " ")
			canonical, ok := tax.FindCanonical(phrase)
			if !ok {
				continue
			}
			if _, dup := seen[canonical]; dup {
				continue
			}
			seen[canonical] = struct{}{}
			out = append(out, canonical)
		}
	}
	return out
}

// NormalizeSkills maps each skill to its canonical name, keeping unknown
// entries as given.
func NormalizeSkills(tax *taxonomy.Taxonomy, skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if canonical, ok := tax.FindCanonical(s); ok {
			out = append(out, canonical)
			continue
		}
		out = append(out, s)
	}
	return out
}

// SuggestSkills unions the related lists of every resolvable skill, skipping
// skills already held, in insertion order up to limit.
func SuggestSkills(tax *taxonomy.Taxonomy, skills []string, limit int) []string {
	if limit <= 0 {
		limit = 5
	}

	held := map[string]struct{}{}
	for _, s := range skills {
		if canonical, ok := tax.FindCanonical(s); ok {
			held[canonical] = struct{}{}
		}
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, limit)
	for _, s := range skills {
		for _, rel := range tax.RelatedSkills(s) {
			if _, ok := held[rel]; ok {
				continue
			}
			if _, dup := seen[rel]; dup {
				continue
			}
			seen[rel] = struct{}{}
			out = append(out, rel)
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}
