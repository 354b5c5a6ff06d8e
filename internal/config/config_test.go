package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "token-123", cfg.DiscordToken)
	assert.Equal(t, "config.json", cfg.ConfigFile)
}

func TestLoadConfigFileOverride(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("CONFIG_FILE", "/var/lib/bot/config.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/bot/config.json", cfg.ConfigFile)
}
