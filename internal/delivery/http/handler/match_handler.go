package handler

import (
	"errors"

	"talentmatch/internal/delivery/http/dto"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/pkg/response"
	"talentmatch/internal/pkg/validate"
	"talentmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/matches", h.CalculateMatch)
	r.Get("/jobs/:job_id/matches", h.JobMatches)
	r.Post("/applications/:application_id/match/refresh", h.RefreshApplication)
}

func (h *MatchHandler) CalculateMatch(c fiber.Ctx) error {
	var req dto.CalculateMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}
	if req.Weights != nil {
		if err := req.Weights.ValidateSum(); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
		}
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	score, err := h.uc.CalculateMatch(c.Context(), candidateID, jobID, req.Weights.Domain())
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := dto.MatchScoreResponse{
		CandidateID: candidateID.String(),
		JobID:       jobID.String(),
		Score:       score,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) JobMatches(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ranked, err := h.uc.CalculateMatchesForJob(c.Context(), jobID, nil, nil)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := dto.JobMatchesResponse{
		JobID:      jobID.String(),
		Count:      len(ranked),
		Candidates: make([]dto.RankedCandidateResponse, 0, len(ranked)),
	}
	for _, rc := range ranked {
		out.Candidates = append(out.Candidates, dto.RankedCandidateResponse{
			CandidateID: rc.CandidateID.String(),
			FullName:    rc.FullName,
			Overall:     rc.Score.Overall,
			Score:       rc.Score,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) RefreshApplication(c fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("application_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.RefreshApplicationScore(c.Context(), appID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := dto.RefreshApplicationResponse{
		ApplicationID: app.ID.String(),
		JobID:         app.JobID.String(),
		CandidateID:   app.CandidateID.String(),
		Status:        app.Status,
	}
	if app.Match != nil {
		out.Match = *app.Match
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
