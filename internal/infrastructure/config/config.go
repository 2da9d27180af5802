package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the service configuration, loaded from environment variables.
// A .env file is honored via godotenv autoload in main.

type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// AdminToken is the shared staff secret checked by the auth middleware.
	// Staff endpoints answer 500 until it is set.
	AdminToken string `env:"ADMIN_TOKEN"`

	// AllowTerminalOverride keeps the historical behavior of letting staff
	// cancel or refund an order that already reached a terminal status.
	AllowTerminalOverride bool `env:"ALLOW_TERMINAL_OVERRIDE" envDefault:"true"`

	// CacheTTL bounds staleness of the order/booking read cache.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30s"`

	// KafkaBroker enables the audit event publisher when set.
	KafkaBroker string `env:"KAFKA_BROKER"`
	KafkaTopic  string `env:"KAFKA_TOPIC" envDefault:"repairhub.events"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
