package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Delivery modes for the issued credential.
const (
	DeliveryCookie = "cookie"
	DeliveryQuery  = "query"
)

// Backends for the transient login-correlation store.
const (
	StateStoreMemory = "memory"
	StateStoreRedis  = "redis"
)

type Config struct {
	AppPort     string `env:"PORT" envDefault:"5000"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleCallbackURL  string `env:"GOOGLE_CALLBACK_URL"`

	// JWTSecret signs and verifies issued credentials. Required; never logged.
	JWTSecret string `env:"JWT_SECRET"`

	// CookieSecure marks cookies secure-only. Enable whenever the service
	// is reached over HTTPS.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`

	TokenDelivery string `env:"TOKEN_DELIVERY" envDefault:"cookie"`
	StateStore    string `env:"STATE_STORE" envDefault:"memory"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment and validates it.
// Misconfiguration is reported here so the process fails at startup
// rather than per-request.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.GoogleClientID == "" || c.GoogleClientSecret == "" || c.GoogleCallbackURL == "" {
		return errors.New("GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_CALLBACK_URL are required")
	}
	switch c.TokenDelivery {
	case DeliveryCookie, DeliveryQuery:
	default:
		return fmt.Errorf("TOKEN_DELIVERY must be %q or %q, got %q", DeliveryCookie, DeliveryQuery, c.TokenDelivery)
	}
	switch c.StateStore {
	case StateStoreMemory:
	case StateStoreRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required when STATE_STORE=redis")
		}
	default:
		return fmt.Errorf("STATE_STORE must be %q or %q, got %q", StateStoreMemory, StateStoreRedis, c.StateStore)
	}
	return nil
}
