package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "data/medicita.db", cfg.Store.SQLitePath)
	assert.Equal(t, "med_", cfg.Store.KeyPrefix)
	assert.False(t, cfg.Scheduler.RecheckOnUpdate)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "fs", cfg.Backup.Driver)
	assert.Equal(t, "backups", cfg.Backup.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvFileAndEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_PORT=9090\nSTORE_DRIVER=redis\nSEED_ENABLED=false\n"), 0o600))
	t.Setenv("SCHEDULER_RECHECK_ON_UPDATE", "true")
	t.Setenv("BACKUP_S3_BUCKET", "clinic")

	cfg, err := load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.False(t, cfg.Seed.Enabled)
	assert.True(t, cfg.Scheduler.RecheckOnUpdate)
	assert.Equal(t, "clinic", cfg.Backup.S3.Bucket)
}
