package routes

import (
	"log"

	"github.com/Cohenad10/grad-major-api/internal/config"
	"github.com/Cohenad10/grad-major-api/internal/database"
	v1 "github.com/Cohenad10/grad-major-api/internal/delivery/http/routes/v1"
	"github.com/Cohenad10/grad-major-api/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redis, logger)
}
