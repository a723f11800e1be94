package app

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ruin-platform/internal/audit"
	"ruin-platform/internal/cache"
	"ruin-platform/internal/config"
	"ruin-platform/internal/db"
	"ruin-platform/internal/event"
	"ruin-platform/internal/fair"
	"ruin-platform/internal/jobs"
	"ruin-platform/internal/logger"
	"ruin-platform/internal/monitoring"
	"ruin-platform/internal/security"
	"ruin-platform/internal/simulation"
	"ruin-platform/internal/ws"
)

type Server struct {
	app *fiber.App
}

func NewServer() *Server {
	logger.Init()
	monitoring.Init()

	cfg := config.Load()
	cache.Init(cfg.RedisAddr)
	database := db.Init(cfg.DBPath)

	bus := event.NewBus()
	seeds := fair.NewSeedManager()
	hub := ws.NewHub()
	auditService := audit.New(database)

	simService := simulation.New(database, bus, seeds, cfg)
	simulation.RegisterConsumers(bus, auditService, hub)

	manager := jobs.New()
	manager.Register(simulation.NewQueueWorker(simService))
	go manager.Start(context.Background())

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/ws", websocket.New(hub.Handler))

	api := app.Group("/api", security.APIKeyGuard())
	simulation.RegisterRoutes(api, simService)

	admin := app.Group("/admin", security.AdminGuard())
	simulation.RegisterAdminRoutes(admin, simService)

	return &Server{app: app}
}

func (s *Server) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return s.app.Listen(":" + port)
}
