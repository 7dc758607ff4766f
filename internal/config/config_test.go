package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")

	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "token-123", cfg.DiscordToken)
	require.Equal(t, "!", cfg.CommandPrefix)
	require.Equal(t, "datastore.json", cfg.StoragePath)
}

func TestNewManagerRoles(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("MANAGER_ROLES", "Herald,Moderator")
	t.Setenv("COMMAND_PREFIX", "?")

	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, []string{"Herald", "Moderator"}, cfg.ManagerRoles)
	require.Equal(t, "?", cfg.CommandPrefix)
}

func TestNewMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := New()
	require.Error(t, err)
}
