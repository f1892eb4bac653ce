package config

import (
	"os"
	"strings"
	"time"

	strs "starnotary/pkg/platform/strings"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	RequireAuth   bool
}

// Redis captures connection settings for the star-info cache.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Kafka captures the notification sink settings.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Config aggregates everything main needs to wire the process.
type Config struct {
	Server      Server
	Redis       Redis
	Kafka       Kafka
	PostgresDSN string
}

// StarInfoCacheTTL bounds staleness of cached star records.
var StarInfoCacheTTL = 5 * time.Minute

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("STARNOTARY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("STARNOTARY_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	topic := os.Getenv("STARNOTARY_KAFKA_TOPIC")
	if topic == "" {
		topic = "star.notifications"
	}

	var brokers []string
	if raw := os.Getenv("STARNOTARY_KAFKA_BROKERS"); raw != "" {
		brokers = strs.DedupeAndTrim(strings.Split(raw, ","))
	}

	return Config{
		Server: Server{
			Addr:          addr,
			JWTSigningKey: jwtSigningKey,
			RequireAuth:   os.Getenv("STARNOTARY_REQUIRE_AUTH") == "true",
		},
		Redis: Redis{
			URL:          os.Getenv("STARNOTARY_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: Kafka{
			Brokers: brokers,
			Topic:   topic,
		},
		PostgresDSN: os.Getenv("STARNOTARY_POSTGRES_DSN"),
	}
}
