package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "API_BASE_URL", "API_TIMEOUT", "STORE_DRIVER", "REDIS_ADDR", "SESSION_TTL"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "tvshows-auth", cfg.AppName)
	assert.Equal(t, "https://api.infinum.academy", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.False(t, cfg.UsePostgres())
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8080/")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("RATE_LIMIT_MAX", "42")
	t.Setenv("RATE_LIMIT_ALLOW_PRIVATE", "true")

	cfg := Load()

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.True(t, cfg.UsePostgres())
	assert.Equal(t, 42, cfg.RateLimitMax)
	assert.True(t, cfg.RateLimitAllowPrivate)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_MAX", "many")
	t.Setenv("DEBUG_METRICS_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, 10, cfg.RateLimitMax)
	assert.True(t, cfg.DebugMetricsEnabled)
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " http://a.test, ,http://b.test "}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "1", DBName: "d", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:1/d?sslmode=disable", cfg.PostgresDSN())
}
