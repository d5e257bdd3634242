package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-dashboard/internal/config"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, config.DatasetSourceCSV, cfg.Dataset.Source)
	assert.Equal(t, "dfTransjakarta180kRows.csv", cfg.Dataset.Path)
	assert.Equal(t, 10, cfg.Dashboard.RouteLimit)
	assert.Equal(t, 100, cfg.Dashboard.MapLimit)
	assert.Equal(t, time.Hour, cfg.Cache.DashboardCacheTTL)
	assert.Equal(t, 256, cfg.Cache.MemoryEntries)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFile_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nDATASET_PATH=data/taps.csv\nDASHBOARD_ROUTE_LIMIT=5\nREDIS_ENABLED=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("DASHBOARD_ROUTE_LIMIT", "7")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "data/taps.csv", cfg.Dataset.Path)
	assert.Equal(t, 7, cfg.Dashboard.RouteLimit)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Run("unknown source", func(t *testing.T) {
		t.Setenv("DATASET_SOURCE", "parquet")
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "unknown DATASET_SOURCE")
	})

	t.Run("postgres without db name", func(t *testing.T) {
		t.Setenv("DATASET_SOURCE", "postgres")
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "DB_NAME")
	})

	t.Run("no memory cache without redis", func(t *testing.T) {
		t.Setenv("DASHBOARD_MEMORY_CACHE_SIZE", "0")
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "DASHBOARD_MEMORY_CACHE_SIZE")
	})

	t.Run("non positive route limit", func(t *testing.T) {
		t.Setenv("DASHBOARD_ROUTE_LIMIT", "0")
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "DASHBOARD_ROUTE_LIMIT")
	})
}
