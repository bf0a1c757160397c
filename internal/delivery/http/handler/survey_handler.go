package handler

import (
	"github.com/Cohenad10/grad-major-api/internal/delivery/http/dto"
	"github.com/Cohenad10/grad-major-api/internal/delivery/http/middleware"
	"github.com/Cohenad10/grad-major-api/internal/pkg/response"
	"github.com/Cohenad10/grad-major-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SurveyHandler struct {
	uc usecase.SurveyUsecase
}

func NewSurveyHandler(uc usecase.SurveyUsecase) *SurveyHandler {
	return &SurveyHandler{uc: uc}
}

func (h *SurveyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/submit", h.Submit)
}

func (h *SurveyHandler) Submit(c fiber.Ctx) error {
	var req dto.SurveySubmitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if problems := req.Validate(); len(problems) > 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid survey", map[string]any{"errors": problems}, nil)
	}

	res, err := h.uc.Submit(c.Context(), req.ToSurvey())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSurveyResultResponse(res))
}
