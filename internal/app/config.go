package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"shift-tracker/internal/auth"
	"shift-tracker/internal/shared/connection"

	"golang.org/x/time/rate"
)

// Config is read once from the environment (after godotenv.Load in main).
type Config struct {
	Port           string
	Postgres       connection.PostgresConfig
	RedisAddr      string
	KafkaBroker    string
	JWTSecret      string
	IdPSecret      string
	AccessTokenTTL time.Duration
	StatsLocation  *time.Location
	RateLimitRPS   rate.Limit
	RateLimitBurst int
	SecureCookies  bool
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Port: envOr("PORT", "3000"),
		Postgres: connection.PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   os.Getenv("DB_NAME"),
			Port:     envOr("DB_PORT", "5432"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		IdPSecret:      os.Getenv("IDP_SECRET"),
		AccessTokenTTL: auth.DefaultAccessTokenTTL,
		RateLimitRPS:   1,
		RateLimitBurst: 5,
		SecureCookies:  os.Getenv("COOKIE_SECURE") == "true",
	}

	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL: %w", err)
		}
		cfg.AccessTokenTTL = ttl
	}

	loc, err := time.LoadLocation(envOr("STATS_TIMEZONE", "UTC"))
	if err != nil {
		return Config{}, fmt.Errorf("STATS_TIMEZONE: %w", err)
	}
	cfg.StatsLocation = loc

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimitRPS = rate.Limit(rps)
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
		}
		cfg.RateLimitBurst = burst
	}

	return cfg, nil
}

// RequireAPISecrets fails fast when the HTTP API would otherwise sign tokens
// with an empty key.
func (c Config) RequireAPISecrets() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IdPSecret == "" {
		return errors.New("IDP_SECRET is required")
	}
	return nil
}

func (c Config) RequireKafka() error {
	if c.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
