package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"CONSOLE_ADDR", "API_BASE_URL", "API_TIMEOUT", "SESSION_TTL", "ORDER_EVENTS_TOPIC",
		"CONSOLE_PUBLIC_URL", "EXPORT_TIMEZONE", "AUDIT_ENABLED", "ORDER_EVENTS_ENABLED",
		"DB_HOST", "KAFKA_BROKER",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8084", cfg.Addr)
	assert.Equal(t, "http://localhost:5179/api", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "console-order-events", cfg.OrderEventsTopic)
	assert.Equal(t, "UTC", cfg.ExportTimezone)
	assert.False(t, cfg.AuditEnabled)
	assert.False(t, cfg.EventsEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CONSOLE_ADDR", ":9000")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("SESSION_TTL", "-1h")
	t.Setenv("DB_HOST", "db")
	t.Setenv("AUDIT_ENABLED", "")
	t.Setenv("KAFKA_BROKER", "kafka:9092")
	t.Setenv("ORDER_EVENTS_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL, "non-positive durations fall back")
	assert.True(t, cfg.AuditEnabled, "audit follows DB_HOST")
	assert.False(t, cfg.EventsEnabled, "explicit flag wins over KAFKA_BROKER")
}
