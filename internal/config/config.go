package config

import (
	"os"
	"strings"
	"time"
)

type AppConfig struct {
	HTTPAddr        string
	Store           string // "memory" or "postgres"
	DatabaseURL     string
	KafkaBrokers    []string
	RedisAddr       string
	RedisPass       string
	BalanceCacheTTL time.Duration
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr:        getEnv("HTTP_ADDR", ":3000"),
		Store:           getEnv("STORE", "memory"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		KafkaBrokers:    getEnvSlice("KAFKA_BROKERS", nil),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPass:       getEnv("REDIS_PASS", ""),
		BalanceCacheTTL: getEnvDuration("BALANCE_CACHE_TTL", time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
