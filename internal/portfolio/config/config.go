package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the portfolio module.
type Config struct {
	// MongoDB Configuration
	MongoDBURI   string `env:"MONGODB_URI,required"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"portfolio_db"`

	// CORS
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	// Uploads
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadBytes int    `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"` // 10 MiB

	// SMTP Configuration. Mail delivery is disabled when SMTPEmail or
	// SMTPPassword is empty; contact submissions still succeed.
	SMTPHost     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPEmail    string `env:"SMTP_EMAIL" envDefault:""`
	SMTPPassword string `env:"SMTP_PASSWORD" envDefault:""`
	ContactEmail string `env:"CONTACT_EMAIL" envDefault:"shahdevang1910@gmail.com"`

	// Redis list cache. Empty address disables caching.
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:""`
	RedisPassword string        `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"60s"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load configuration from environment: " + err.Error())
	}

	if cfg.MongoDBURI == "" {
		return nil, errors.New("mongodb_uri is required")
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Minute
	}

	return cfg, nil
}

// MailEnabled reports whether SMTP credentials are configured. When false the
// notification service runs in no-op mode.
func (c *Config) MailEnabled() bool {
	return c.SMTPEmail != "" && c.SMTPPassword != ""
}

// CacheEnabled reports whether the redis list cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
