package dto

import "talentmatch/internal/domain/taxonomy"

type NormalizeSkillsRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,min=1"`
}

type ExtractSkillsRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

type SuggestSkillsRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,min=1"`
	Limit  int      `json:"limit" validate:"omitempty,gte=1,lte=20"`
}

type SkillListResponse struct {
	Skills []string `json:"skills"`
}

type SkillNodeResponse struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Synonyms []string `json:"synonyms,omitempty"`
	Related  []string `json:"related,omitempty"`
}

func SkillNodesResponse(nodes []taxonomy.SkillNode) []SkillNodeResponse {
	out := make([]SkillNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, SkillNodeResponse{
			Name:     n.Canonical,
			Category: n.Category,
			Synonyms: n.Synonyms,
			Related:  n.Related,
		})
	}
	return out
}
