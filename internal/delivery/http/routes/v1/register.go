package v1

import (
	"log"

	"github.com/Cohenad10/grad-major-api/internal/config"
	"github.com/Cohenad10/grad-major-api/internal/database"
	"github.com/Cohenad10/grad-major-api/internal/delivery/http/handler"
	"github.com/Cohenad10/grad-major-api/internal/delivery/http/middleware"
	"github.com/Cohenad10/grad-major-api/internal/infrastructure/cache"
	"github.com/Cohenad10/grad-major-api/internal/pkg/jwt"
	"github.com/Cohenad10/grad-major-api/internal/recommend"
	"github.com/Cohenad10/grad-major-api/internal/repository"
	"github.com/Cohenad10/grad-major-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	occupationRepo := repository.NewPostgresOccupationRepository(db)
	elementRepo := repository.NewPostgresElementRepository(db)
	surveyRepo := repository.NewPostgresSurveyRepository(db)

	engine := recommend.NewEngine(recommend.DefaultWeights(), cfg.Recommend.TopN)

	surveyUC := usecase.NewSurveyUsecase(
		occupationRepo,
		elementRepo,
		surveyRepo,
		engine,
		redis,
		cfg.Recommend.AggregateCacheTTL,
		logger,
	)

	surveyHandler := handler.NewSurveyHandler(surveyUC)
	surveyHandler.RegisterRoutes(r.Group("/survey"))

	// Operator endpoints stay unregistered unless both the password hash
	// and the signing secret are configured.
	if cfg.Admin.Enabled() {
		jwtSvc := jwt.NewHMACService(cfg.Admin.JWTSecret, cfg.Admin.TokenExpiresIn)
		adminUC := usecase.NewAdminUsecase(cfg.Admin.PasswordHash, jwtSvc, occupationRepo, surveyRepo)
		adminHandler := handler.NewAdminHandler(adminUC)

		adminGroup := r.Group("/admin")
		adminHandler.RegisterPublicRoutes(adminGroup)

		authMw := middleware.NewAuthMiddleware(jwtSvc)
		adminHandler.RegisterProtectedRoutes(adminGroup.Group("", authMw.RequireAdmin()))
	}
}
