package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/di"
	"portfolio-backend/internal/portfolio/config"
	"portfolio-backend/internal/shared/logger"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port string `env:"SERVER_PORT" envDefault:"8000"`
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	serverCfg := &ServerConfig{}
	if err := env.Parse(serverCfg); err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	appLogger := logger.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLogger.Infof("Configuration loaded (mail enabled: %v, cache enabled: %v)", cfg.MailEnabled(), cfg.CacheEnabled())

	container := di.NewContainer(appLogger)
	defer func() {
		if err := container.Close(); err != nil {
			appLogger.Errorf("Failed to close container: %v", err)
		}
	}()

	if err := container.Initialize(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	appLogger.Info("Portfolio module initialized successfully")

	app := fiber.New(fiber.Config{
		AppName:      "Portfolio API v1.0",
		BodyLimit:    cfg.MaxUploadBytes,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			appLogger.Errorf("HTTP Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"detail": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := container.HealthCheck(healthCtx); err != nil {
			appLogger.Errorf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "UNHEALTHY",
				"error":  err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"status":    "HEALTHY",
			"message":   "Portfolio API is running",
			"timestamp": time.Now().UTC(),
		})
	})

	container.PortfolioModule.RegisterRoutes(app)
	appLogger.Info("Portfolio routes registered")

	serverAddr := fmt.Sprintf("%s:%s", serverCfg.Host, serverCfg.Port)
	appLogger.Infof("Starting HTTP server on %s", serverAddr)

	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			log.Fatalf("Server startup failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Infof("Received shutdown signal: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("Server forced to shutdown: %v", err)
		}

		appLogger.Info("HTTP server stopped")
	}
}
