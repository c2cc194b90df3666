package handler

import (
	"errors"

	"talentmatch/internal/delivery/http/dto"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/pkg/response"
	"talentmatch/internal/pkg/validate"
	"talentmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/skills")
	grp.Post("/normalize", h.Normalize)
	grp.Post("/extract", h.Extract)
	grp.Post("/suggest", h.Suggest)
	grp.Get("/categories", h.Categories)
	grp.Get("/categories/:category", h.ByCategory)
}

func (h *SkillHandler) Normalize(c fiber.Ctx) error {
	var req dto.NormalizeSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}

	skills, err := h.uc.NormalizeSkills(c.Context(), req.Skills)
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillListResponse{Skills: skills})
}

func (h *SkillHandler) Extract(c fiber.Ctx) error {
	var req dto.ExtractSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}

	skills, err := h.uc.ExtractSkills(c.Context(), req.Text)
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillListResponse{Skills: skills})
}

func (h *SkillHandler) Suggest(c fiber.Ctx) error {
	var req dto.SuggestSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}

	skills, err := h.uc.SuggestSkills(c.Context(), req.Skills, req.Limit)
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillListResponse{Skills: skills})
}

func (h *SkillHandler) Categories(c fiber.Ctx) error {
	categories, err := h.uc.Categories(c.Context())
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"categories": categories})
}

func (h *SkillHandler) ByCategory(c fiber.Ctx) error {
	nodes, err := h.uc.SkillsByCategory(c.Context(), c.Params("category"))
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillNodesResponse(nodes))
}

func mapSkillUsecaseError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
