package di

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/portfolio/adapter/cache"
	"portfolio-backend/internal/portfolio/config"
	"portfolio-backend/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Container owns the process-wide shared clients (MongoDB, optional Redis)
// and the portfolio module, with explicit init and shutdown.
type Container struct {
	mu sync.RWMutex

	mongoClient *mongo.Client
	mongoDB     *mongo.Database
	redisClient *redis.Client

	PortfolioModule *portfolio.Module
	Config          *config.Config
	Logger          logger.Logger
}

// NewContainer creates an empty container.
func NewContainer(log logger.Logger) *Container {
	return &Container{Logger: log}
}

// Initialize connects the shared clients and wires the portfolio module.
// An unreachable Redis disables the list cache rather than failing startup.
func (c *Container) Initialize(ctx context.Context, cfg *config.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Config = cfg

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoDBURI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := mongoClient.Ping(connectCtx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	c.mongoClient = mongoClient
	c.mongoDB = mongoClient.Database(cfg.DatabaseName)
	c.Logger.Info("MongoDB connection established successfully")

	if cfg.CacheEnabled() {
		redisClient := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisClient.Ping(connectCtx).Err(); err != nil {
			c.Logger.Warnf("Redis unreachable, list cache disabled: %v", err)
			redisClient.Close()
		} else {
			c.redisClient = redisClient
			c.Logger.Info("Redis connection established, list cache enabled")
		}
	} else {
		c.Logger.Info("REDIS_ADDR not set, list cache disabled")
	}

	module, err := portfolio.NewModule(c.mongoDB, c.redisClient, cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create portfolio module: %w", err)
	}
	c.PortfolioModule = module

	return nil
}

// HealthCheck verifies the shared clients are reachable.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.mongoClient == nil {
		return fmt.Errorf("mongodb not initialized")
	}
	if err := c.mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb unhealthy: %w", err)
	}
	if c.redisClient != nil {
		if err := c.redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis unhealthy: %w", err)
		}
	}
	return nil
}

// Close releases the shared clients.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			firstErr = err
		}
		c.redisClient = nil
	}
	if c.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.mongoClient.Disconnect(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
		c.mongoClient = nil
	}
	return firstErr
}
