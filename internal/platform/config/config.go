// Package config loads runtime configuration from the environment so main
// stays lean.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures everything the server binary needs to start.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// Backend is the decision backend the endpoint handlers delegate to.
	Backend BackendConfig

	// Redis, when configured, backs the session store. Empty URL means
	// sessions stay in process memory.
	Redis RedisConfig

	// PostgresDSN, when set, backs the claim store. Empty means claims stay
	// in process memory.
	PostgresDSN string

	// Kafka, when configured, receives audit events. No brokers means audit
	// events are kept in memory.
	Kafka KafkaConfig

	// SessionTTL bounds how long a login stays valid.
	SessionTTL time.Duration
}

// BackendConfig locates and authenticates against the decision backend.
type BackendConfig struct {
	BaseURL     string
	AccessToken string
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds the audit pipeline settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	cfg := Config{
		Addr: envOr("GATEKIT_ADDR", ":8080"),
		Backend: BackendConfig{
			BaseURL:     envOr("GATEKIT_BACKEND_URL", "http://localhost:8090"),
			AccessToken: os.Getenv("GATEKIT_BACKEND_TOKEN"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("GATEKIT_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		PostgresDSN: os.Getenv("GATEKIT_POSTGRES_DSN"),
		Kafka: KafkaConfig{
			Topic: envOr("GATEKIT_AUDIT_TOPIC", "gatekit.audit"),
		},
		SessionTTL: durationOr("GATEKIT_SESSION_TTL", time.Hour),
	}

	if brokers := os.Getenv("GATEKIT_KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}

	return cfg
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
