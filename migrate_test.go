package main

import (
	"os"
	"testing"

	"github.com/jaba-landing/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearStoreEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "STORE_DRIVER", "TOAST_DURATION"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestMigrationURL_MatchesServeConfig(t *testing.T) {
	clearStoreEnv(t)

	got, err := migrationURL()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDatabaseURL, got)

	t.Setenv("DATABASE_URL", "postgres://jaba:secret@db:5432/jaba")
	got, err = migrationURL()
	require.NoError(t, err)
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.DatabaseURL, got)
	assert.Equal(t, "postgres://jaba:secret@db:5432/jaba", got)
}

func TestMigrationURL_InvalidConfig(t *testing.T) {
	clearStoreEnv(t)
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := migrationURL()
	assert.Error(t, err)
}
