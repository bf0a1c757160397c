package routes

import (
	"log"

	"github.com/Cohenad10/grad-major-api/internal/config"
	"github.com/Cohenad10/grad-major-api/internal/database"
	"github.com/Cohenad10/grad-major-api/internal/delivery/http/handler"
	"github.com/Cohenad10/grad-major-api/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	logger *log.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, redis *cache.Redis, logger *log.Logger) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		cache:  redis,
		logger: logger,
		health: handler.NewHealthHandler(db),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.cache, r.logger)
}
