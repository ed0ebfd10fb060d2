package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "atm_accounts.db", cfg.DBPath)
	assert.False(t, cfg.SeedAccounts)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ATM_DB_PATH", "/tmp/other.db")
	t.Setenv("ATM_SEED_ACCOUNTS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.True(t, cfg.SeedAccounts)
}
