package taxonomy

import (
	"sort"
	"strings"
	"unicode"
)

type SkillNode struct {
	Canonical string
	Synonyms  []string
	Related   []string
	Category  string
}

type Taxonomy struct {
	nodes   map[string]SkillNode
	index   map[string]string
	related map[string]map[string]struct{}
}

// Normalize lowercases, trims and strips every non-alphanumeric rune.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func New(catalog []SkillNode) *Taxonomy {
	t := &Taxonomy{
		nodes:   make(map[string]SkillNode, len(catalog)),
		index:   make(map[string]string, len(catalog)*3),
		related: make(map[string]map[string]struct{}, len(catalog)),
	}

	for _, n := range catalog {
		canonical := strings.TrimSpace(n.Canonical)
		if canonical == "" {
			continue
		}
		t.nodes[canonical] = n

		key := Normalize(canonical)
		if key != "" {
			t.index[key] = canonical
		}
		for _, syn := range n.Synonyms {
			key := Normalize(syn)
			if key == "" {
				continue
			}
			t.index[key] = canonical
		}
	}

	// Related edges are directed; keep only targets that exist in the catalog.
	for _, n := range catalog {
		edges := make(map[string]struct{}, len(n.Related))
		for _, rel := range n.Related {
			target, ok := t.index[Normalize(rel)]
			if !ok {
				continue
			}
			edges[target] = struct{}{}
		}
		t.related[strings.TrimSpace(n.Canonical)] = edges
	}

	return t
}

func Default() *Taxonomy {
	return New(Catalog())
}

func (t *Taxonomy) FindCanonical(text string) (string, bool) {
	if t == nil {
		return "", false
	}
	key := Normalize(text)
	if key == "" {
		return "", false
	}
	canonical, ok := t.index[key]
	return canonical, ok
}

func (t *Taxonomy) Skill(name string) (SkillNode, bool) {
	if t == nil {
		return SkillNode{}, false
	}
	canonical, ok := t.FindCanonical(name)
	if !ok {
		return SkillNode{}, false
	}
	n, ok := t.nodes[canonical]
	return n, ok
}

// IsRelated reports whether b is the same skill as a or appears in a's
// related list. The lookup is directional: IsRelated(a, b) does not imply
// IsRelated(b, a).
func (t *Taxonomy) IsRelated(a, b string) bool {
	if t == nil {
		return false
	}
	ca, ok := t.FindCanonical(a)
	if !ok {
		return false
	}
	cb, ok := t.FindCanonical(b)
	if !ok {
		return false
	}
	if ca == cb {
		return true
	}
	_, ok = t.related[ca][cb]
	return ok
}

func (t *Taxonomy) RelatedSkills(name string) []string {
	if t == nil {
		return nil
	}
	canonical, ok := t.FindCanonical(name)
	if !ok {
		return nil
	}
	n, ok := t.nodes[canonical]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(n.Related))
	for _, rel := range n.Related {
		target, ok := t.index[Normalize(rel)]
		if !ok {
			continue
		}
		out = append(out, target)
	}
	return out
}

func (t *Taxonomy) SkillsByCategory(category string) []SkillNode {
	if t == nil {
		return nil
	}
	category = strings.TrimSpace(category)
	out := make([]SkillNode, 0)
	for _, n := range t.nodes {
		if strings.EqualFold(n.Category, category) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Canonical < out[j].Canonical })
	return out
}

func (t *Taxonomy) Categories() []string {
	if t == nil {
		return nil
	}
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, n := range t.nodes {
		if n.Category == "" {
			continue
		}
		if _, ok := seen[n.Category]; ok {
			continue
		}
		seen[n.Category] = struct{}{}
		out = append(out, n.Category)
	}
	sort.Strings(out)
	return out
}
