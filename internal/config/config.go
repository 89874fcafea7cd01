package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string        `env:"WEBSITE_PORT" envDefault:"4002"`
	Environment     string        `env:"GO_ENV" envDefault:"development"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Contact ContactConfig
	Email   EmailConfig
	Redis   RedisConfig
}

// ContactConfig controls where demo requests go and how often a client may
// submit one.
type ContactConfig struct {
	Recipient         string        `env:"CONTACT_RECIPIENT" envDefault:"abhishekasgola09@gmail.com"`
	DedupWindow       time.Duration `env:"DEDUP_WINDOW" envDefault:"10m"`
	FormRatePerMinute int           `env:"FORM_RATE_PER_MINUTE" envDefault:"5"`
	FormRateBurst     int           `env:"FORM_RATE_BURST" envDefault:"3"`
}

// EmailConfig holds Mailgun settings. When Mailgun is not configured demo
// requests fall back to a mailto: redirect.
type EmailConfig struct {
	Enabled        bool   `env:"EMAIL_ENABLED" envDefault:"false"`
	MailgunDomain  string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey  string `env:"MAILGUN_API_KEY"`
	MailgunAPIBase string `env:"MAILGUN_API_BASE"`
	FromEmail      string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@inferman.dev"`
	FromName       string `env:"EMAIL_FROM_NAME" envDefault:"InMan Website"`
}

func (e *EmailConfig) IsConfigured() bool {
	return e.Enabled && e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

func (r *RedisConfig) IsConfigured() bool {
	return r.Addr != ""
}

// Load reads envFile when present and then the process environment.
func Load(log *slog.Logger, envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Debug(".env file not found, using environment and defaults", slog.String("path", envFile))
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Port == "" {
		cfg.Port = "4002"
	}
	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.Port),
		slog.Bool("mailgun", cfg.Email.IsConfigured()),
		slog.Bool("redis", cfg.Redis.IsConfigured()),
	)

	return cfg, nil
}
