package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Cohenad10/grad-major-api/internal/config"
	"github.com/Cohenad10/grad-major-api/internal/database/migration"
	"github.com/Cohenad10/grad-major-api/internal/delivery/http/middleware"
	"github.com/Cohenad10/grad-major-api/internal/delivery/http/routes"
	"github.com/Cohenad10/grad-major-api/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap wires the whole server: database, optional migrations, redis,
// middleware, and routes. The returned cleanup closes the database pool.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(os.Stdout, "["+cfg.App.AppName+"] ", log.LstdFlags|log.LUTC)

	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.App.RunMigrations {
		runner := migration.Runner{Dir: cfg.App.MigrationsDir, Logger: logger}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		err := runner.Run(ctx, container.DB.SQLDB())
		cancel()
		if err != nil {
			_ = container.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	redis := cache.NewRedis(logger)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	routes.NewRegistry(cfg, container.DB, redis, logger).Register(f)

	return &App{Fiber: f}, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
