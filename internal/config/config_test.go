package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_WINDOW", "")

	cfg, _ := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api/v1", cfg.BasePath)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.NotEmpty(t, cfg.KafkaBrokers)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("RATE_LIMIT_WINDOW", "30")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("REDIS_DB", "3")

	cfg, _ := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, int64(5), cfg.RateLimitRequests)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestGetEnvDuration_Invalid(t *testing.T) {
	t.Setenv("X_TIMEOUT", "abc")
	assert.Equal(t, time.Second, getEnvDuration("X_TIMEOUT", time.Second))
}
