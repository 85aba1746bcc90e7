package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("MEDIASHELF_GATEWAY_URL", "wss://gateway.example/ws")
	t.Setenv("MEDIASHELF_GATEWAY_TOKEN", "secret")
	t.Setenv("MEDIASHELF_CHANNEL", "coursehub")
	t.Setenv("MEDIASHELF_ADMIN_ID", "42")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "wss://gateway.example/ws", cfg.GatewayURL)
	assert.Equal(t, "coursehub", cfg.Channel)
	assert.Equal(t, int64(42), cfg.AdminID)
	assert.Equal(t, "./mediashelf.db", cfg.DBPath)
	assert.False(t, cfg.InMemory)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MEDIASHELF_DB_PATH", "/var/lib/mediashelf")
	t.Setenv("MEDIASHELF_IN_MEMORY", "true")
	t.Setenv("MEDIASHELF_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/mediashelf", cfg.DBPath)
	assert.True(t, cfg.InMemory)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("MEDIASHELF_GATEWAY_URL", "wss://gateway.example/ws")
	// Token, channel and admin id unset.
	t.Setenv("MEDIASHELF_GATEWAY_TOKEN", "")
	t.Setenv("MEDIASHELF_CHANNEL", "")
	t.Setenv("MEDIASHELF_ADMIN_ID", "")

	_, err := Load()
	assert.Error(t, err)
}
