package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "STORE", "KAFKA_BROKERS", "BALANCE_CACHE_TTL"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, "memory", cfg.Store)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, time.Minute, cfg.BalanceCacheTTL)
}

func TestGetEnvSliceTrimsElements(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092 ,kafka-3:9092")

	cfg := Load()
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092", "kafka-3:9092"}, cfg.KafkaBrokers)
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("BALANCE_CACHE_TTL", "30s")
	assert.Equal(t, 30*time.Second, Load().BalanceCacheTTL)

	t.Setenv("BALANCE_CACHE_TTL", "garbage")
	assert.Equal(t, time.Minute, Load().BalanceCacheTTL)
}
