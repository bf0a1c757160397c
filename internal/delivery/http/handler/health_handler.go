package handler

import (
	"context"
	"time"

	"github.com/Cohenad10/grad-major-api/internal/database"
	"github.com/Cohenad10/grad-major-api/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	dbStatus := "up"
	status := fiber.StatusOK

	if h.db == nil {
		dbStatus = "down"
		status = fiber.StatusServiceUnavailable
	} else {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			dbStatus = "down"
			status = fiber.StatusServiceUnavailable
		}
	}

	data := map[string]any{"database": dbStatus}
	if status != fiber.StatusOK {
		return response.Error(c, status, response.MessageServiceUnavailable, data)
	}
	return response.Success(c, status, response.MessageOK, data)
}
