package portfolio

import (
	"fmt"

	"portfolio-backend/internal/portfolio/adapter/cache"
	portfoliohttp "portfolio-backend/internal/portfolio/adapter/http"
	"portfolio-backend/internal/portfolio/adapter/mail"
	"portfolio-backend/internal/portfolio/adapter/persistence/mongodb"
	"portfolio-backend/internal/portfolio/config"
	"portfolio-backend/internal/portfolio/domain/repository"
	"portfolio-backend/internal/portfolio/usecase"
	"portfolio-backend/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Module wires the portfolio API: document store gateway, optional list
// cache, notification service and HTTP handler.
type Module struct {
	store    repository.DocumentStore
	notifier usecase.NotificationServiceInterface
	content  usecase.PortfolioUsecaseInterface
	uploads  usecase.UploadUsecaseInterface
	handler  *portfoliohttp.PortfolioHTTPHandler
	config   *config.Config
}

// NewModule creates the portfolio module. redisClient may be nil, which
// disables the list cache.
func NewModule(db *mongo.Database, redisClient *redis.Client, cfg *config.Config, log logger.Logger) (*Module, error) {
	store := mongodb.NewMongoDocumentStore(db)

	var listCache repository.ListCache
	if redisClient != nil {
		listCache = cache.NewRedisListCache(redisClient, cfg.CacheTTL, log)
	}

	var mailer repository.Mailer
	if cfg.MailEnabled() {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)
	}
	notifier := usecase.NewNotificationService(mailer, cfg.ContactEmail, cfg.MailEnabled(), log)

	content := usecase.NewPortfolioUsecase(store, listCache, notifier, log)

	uploads, err := usecase.NewUploadUsecase(cfg.UploadDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	return &Module{
		store:    store,
		notifier: notifier,
		content:  content,
		uploads:  uploads,
		handler:  portfoliohttp.NewPortfolioHTTPHandler(content, uploads),
		config:   cfg,
	}, nil
}

// RegisterRoutes registers the API routes under /api and the static mapping
// for uploaded assets.
func (m *Module) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	m.handler.SetupRoutes(api)
	app.Static("/uploads", m.config.UploadDir)
}

// GetContentUsecase returns the content usecase for external access.
func (m *Module) GetContentUsecase() usecase.PortfolioUsecaseInterface {
	return m.content
}
