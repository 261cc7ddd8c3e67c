package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HAZARD_INTERVAL", "1500ms")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1500*time.Millisecond, cfg.HazardInterval)
}

func TestLoadRejectsBadInterval(t *testing.T) {
	t.Setenv("HAZARD_INTERVAL", "soon")
	cfg := Load()
	assert.Equal(t, 3*time.Second, cfg.HazardInterval)

	t.Setenv("HAZARD_INTERVAL", "-2s")
	cfg = Load()
	assert.Equal(t, 3*time.Second, cfg.HazardInterval)
}
